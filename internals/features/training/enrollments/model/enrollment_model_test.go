package model

import (
	"reflect"
	"strings"
	"testing"
)

// O índice composto (user, turma) não cobre inscrição de curso gravado
// (turma nula, NULLs distintos no Postgres); quem segura a corrida de duas
// auto-inscrições simultâneas no mesmo curso é o índice único parcial.
func TestEnrollmentModel_SelfPacedUniqueBackstop(t *testing.T) {
	typ := reflect.TypeOf(EnrollmentModel{})

	courseField, ok := typ.FieldByName("EnrollmentCourseID")
	if !ok {
		t.Fatalf("campo EnrollmentCourseID não encontrado")
	}
	tag := courseField.Tag.Get("gorm")
	if !strings.Contains(tag, "uniqueIndex:uq_enrollment_user_course_self") {
		t.Errorf("EnrollmentCourseID sem o índice único parcial (user, course): %q", tag)
	}
	if !strings.Contains(tag, "where:enrollment_turma_id IS NULL") {
		t.Errorf("índice (user, course) deveria ser parcial para turma nula: %q", tag)
	}

	userField, ok := typ.FieldByName("EnrollmentUserID")
	if !ok {
		t.Fatalf("campo EnrollmentUserID não encontrado")
	}
	userTag := userField.Tag.Get("gorm")
	if !strings.Contains(userTag, "uniqueIndex:uq_enrollment_user_course_self") {
		t.Errorf("EnrollmentUserID fora do índice único parcial (user, course): %q", userTag)
	}
	if !strings.Contains(userTag, "uniqueIndex:uq_enrollment_user_turma") {
		t.Errorf("EnrollmentUserID fora do índice único (user, turma): %q", userTag)
	}
}
