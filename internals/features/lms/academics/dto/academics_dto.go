// file: internals/features/lms/academics/dto/academics_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	amodel "kuisku_backend/internals/features/lms/academics/model"
)

type CreateSchoolRequest struct {
	SchoolName string  `json:"school_name" validate:"required"`
	SchoolCity *string `json:"school_city"`
}

func (r *CreateSchoolRequest) ToModel() *amodel.SchoolModel {
	return &amodel.SchoolModel{
		SchoolName: strings.TrimSpace(r.SchoolName),
		SchoolCity: r.SchoolCity,
	}
}

type CreateGradeRequest struct {
	GradeSchoolID uuid.UUID `json:"grade_school_id" validate:"required"`
	GradeName     string    `json:"grade_name" validate:"required"`
	GradeOrder    int       `json:"grade_order" validate:"gte=0"`
}

func (r *CreateGradeRequest) ToModel() *amodel.GradeModel {
	return &amodel.GradeModel{
		GradeSchoolID: r.GradeSchoolID,
		GradeName:     strings.TrimSpace(r.GradeName),
		GradeOrder:    r.GradeOrder,
	}
}

type CreateSubjectRequest struct {
	SubjectGradeID uuid.UUID `json:"subject_grade_id" validate:"required"`
	SubjectName    string    `json:"subject_name" validate:"required"`
}

func (r *CreateSubjectRequest) ToModel() *amodel.SubjectModel {
	return &amodel.SubjectModel{
		SubjectGradeID: r.SubjectGradeID,
		SubjectName:    strings.TrimSpace(r.SubjectName),
	}
}

type AssignTeacherGradeRequest struct {
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	GradeID   uuid.UUID `json:"grade_id" validate:"required"`
}
