// internals/features/training/certificates/service/certificate_service.go
package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	certificateModel "franquiaedu_backend/internals/features/training/certificates/model"
	enrollmentModel "franquiaedu_backend/internals/features/training/enrollments/model"
)

var (
	// ErrNotEligible: só inscrição concluída gera certificado.
	ErrNotEligible = errors.New("inscrição ainda não concluída")
)

type CertificateService struct{}

func NewCertificateService() *CertificateService {
	return &CertificateService{}
}

// Issue emite (ou devolve o já emitido) certificado de uma inscrição
// concluída. Idempotente: chamar duas vezes devolve o mesmo registro.
func (s *CertificateService) Issue(db *gorm.DB, enrollmentID uuid.UUID) (*certificateModel.CertificateModel, error) {
	var cert certificateModel.CertificateModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var enrollment enrollmentModel.EnrollmentModel
		if err := tx.First(&enrollment, "enrollment_id = ?", enrollmentID).Error; err != nil {
			return err
		}
		if enrollment.EnrollmentStatus != enrollmentModel.EnrollmentStatusConcluida {
			return ErrNotEligible
		}

		err := tx.First(&cert, "certificate_enrollment_id = ?", enrollmentID).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		code, err := newCode()
		if err != nil {
			return err
		}
		cert = certificateModel.CertificateModel{
			CertificateEnrollmentID: enrollmentID,
			CertificateCode:         code,
			CertificateIssuedAt:     time.Now(),
		}
		return tx.Create(&cert).Error
	})
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

// Verify busca um certificado pelo código público.
func (s *CertificateService) Verify(db *gorm.DB, code string) (*certificateModel.CertificateModel, error) {
	var cert certificateModel.CertificateModel
	if err := db.First(&cert, "certificate_code = ?", strings.ToUpper(strings.TrimSpace(code))).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}

func newCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "CERT-" + strings.ToUpper(hex.EncodeToString(buf)), nil
}
