// internals/features/training/certificates/dto/certificate_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	certificateModel "franquiaedu_backend/internals/features/training/certificates/model"
)

type IssueCertificateRequest struct {
	EnrollmentID uuid.UUID `json:"enrollment_id" validate:"required"`
}

type CertificateResponse struct {
	CertificateID           uuid.UUID `json:"certificate_id"`
	CertificateEnrollmentID uuid.UUID `json:"certificate_enrollment_id"`
	CertificateCode         string    `json:"certificate_code"`
	CertificateIssuedAt     time.Time `json:"certificate_issued_at"`
}

func NewCertificateResponse(m *certificateModel.CertificateModel) *CertificateResponse {
	return &CertificateResponse{
		CertificateID:           m.CertificateID,
		CertificateEnrollmentID: m.CertificateEnrollmentID,
		CertificateCode:         m.CertificateCode,
		CertificateIssuedAt:     m.CertificateIssuedAt,
	}
}
