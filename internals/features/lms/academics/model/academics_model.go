// file: internals/features/lms/academics/model/academics_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   Hierarki: school → grade → subject (level ada di feature levels)
========================================================= */

type SchoolModel struct {
	SchoolID   uuid.UUID `gorm:"column:school_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"school_id"`
	SchoolName string    `gorm:"column:school_name;type:varchar(150);not null" json:"school_name"`
	SchoolCity *string   `gorm:"column:school_city;type:varchar(100)" json:"school_city,omitempty"`

	SchoolCreatedAt time.Time      `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at" json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }

type GradeModel struct {
	GradeID       uuid.UUID `gorm:"column:grade_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"grade_id"`
	GradeSchoolID uuid.UUID `gorm:"column:grade_school_id;type:uuid;not null;index" json:"grade_school_id"`
	GradeName     string    `gorm:"column:grade_name;type:varchar(100);not null" json:"grade_name"`
	GradeOrder    int       `gorm:"column:grade_order;not null;default:0" json:"grade_order"`

	GradeCreatedAt time.Time      `gorm:"column:grade_created_at;autoCreateTime" json:"grade_created_at"`
	GradeUpdatedAt time.Time      `gorm:"column:grade_updated_at;autoUpdateTime" json:"grade_updated_at"`
	GradeDeletedAt gorm.DeletedAt `gorm:"column:grade_deleted_at" json:"grade_deleted_at,omitempty"`
}

func (GradeModel) TableName() string { return "grades" }

type SubjectModel struct {
	SubjectID      uuid.UUID `gorm:"column:subject_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"subject_id"`
	SubjectGradeID uuid.UUID `gorm:"column:subject_grade_id;type:uuid;not null;index" json:"subject_grade_id"`
	SubjectName    string    `gorm:"column:subject_name;type:varchar(100);not null" json:"subject_name"`

	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;autoUpdateTime" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }

// TeacherGradeModel: relasi guru ↔ grade yang diajar (dipakai scope authoring).
type TeacherGradeModel struct {
	TeacherGradeID        uuid.UUID `gorm:"column:teacher_grade_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_grade_id"`
	TeacherGradeTeacherID uuid.UUID `gorm:"column:teacher_grade_teacher_id;type:uuid;not null;index:idx_teacher_grade,priority:1" json:"teacher_grade_teacher_id"`
	TeacherGradeGradeID   uuid.UUID `gorm:"column:teacher_grade_grade_id;type:uuid;not null;index:idx_teacher_grade,priority:2" json:"teacher_grade_grade_id"`

	TeacherGradeCreatedAt time.Time `gorm:"column:teacher_grade_created_at;autoCreateTime" json:"teacher_grade_created_at"`
}

func (TeacherGradeModel) TableName() string { return "teacher_grades" }
