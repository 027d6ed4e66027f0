// internals/features/training/certificates/model/certificate_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CertificateModel representa a tabela `certificates`.
// No máximo um certificado por inscrição; o código é o que o aluno
// apresenta para verificação pública.
type CertificateModel struct {
	CertificateID           uuid.UUID `json:"certificate_id" gorm:"column:certificate_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CertificateEnrollmentID uuid.UUID `json:"certificate_enrollment_id" gorm:"column:certificate_enrollment_id;type:uuid;not null;uniqueIndex:uq_certificate_enrollment"`
	CertificateCode         string    `json:"certificate_code" gorm:"column:certificate_code;type:varchar(40);not null;uniqueIndex:uq_certificate_code"`
	CertificateIssuedAt     time.Time `json:"certificate_issued_at" gorm:"column:certificate_issued_at;not null"`

	CertificateCreatedAt time.Time `json:"certificate_created_at" gorm:"column:certificate_created_at;not null;autoCreateTime"`
}

func (CertificateModel) TableName() string {
	return "certificates"
}
