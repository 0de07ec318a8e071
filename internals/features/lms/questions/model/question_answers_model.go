// file: internals/features/lms/questions/model/question_answers_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   Sub-entity per tipe soal (answer key)
========================================================= */

// MCQAnswerModel: opsi pilihan ganda. Ready butuh 4 opsi, tepat 1 correct.
type MCQAnswerModel struct {
	MCQAnswerID         uuid.UUID `gorm:"column:mcq_answer_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"mcq_answer_id"`
	MCQAnswerQuestionID uuid.UUID `gorm:"column:mcq_answer_question_id;type:uuid;not null;index:idx_mcq_answers_question" json:"mcq_answer_question_id"`
	MCQAnswerValue      string    `gorm:"column:mcq_answer_value;type:text;not null" json:"mcq_answer_value"`
	MCQAnswerIsCorrect  bool      `gorm:"column:mcq_answer_is_correct;not null;default:false" json:"mcq_answer_is_correct"`

	MCQAnswerCreatedAt time.Time `gorm:"column:mcq_answer_created_at;autoCreateTime" json:"mcq_answer_created_at"`
}

func (MCQAnswerModel) TableName() string { return "mcq_answers" }

// BlankSegmentModel: fragmen teks terurut; is_blank=true berarti harus diisi.
type BlankSegmentModel struct {
	BlankSegmentID         uuid.UUID `gorm:"column:blank_segment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"blank_segment_id"`
	BlankSegmentQuestionID uuid.UUID `gorm:"column:blank_segment_question_id;type:uuid;not null;index:idx_blank_segments_question" json:"blank_segment_question_id"`
	BlankSegmentText       string    `gorm:"column:blank_segment_text;type:text;not null" json:"blank_segment_text"`
	BlankSegmentIsBlank    bool      `gorm:"column:blank_segment_is_blank;not null;default:false" json:"blank_segment_is_blank"`
	BlankSegmentOrder      int       `gorm:"column:blank_segment_order;not null" json:"blank_segment_order"`

	BlankSegmentCreatedAt time.Time `gorm:"column:blank_segment_created_at;autoCreateTime" json:"blank_segment_created_at"`
}

func (BlankSegmentModel) TableName() string { return "blank_segments" }

// BlankAnswerModel: jawaban yang diterima untuk satu blank index.
// Satu index boleh punya beberapa value berbeda (match case/whitespace-insensitive).
type BlankAnswerModel struct {
	BlankAnswerID         uuid.UUID `gorm:"column:blank_answer_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"blank_answer_id"`
	BlankAnswerQuestionID uuid.UUID `gorm:"column:blank_answer_question_id;type:uuid;not null;index:idx_blank_answers_question" json:"blank_answer_question_id"`
	BlankAnswerBlankIndex int       `gorm:"column:blank_answer_blank_index;not null" json:"blank_answer_blank_index"`
	BlankAnswerValue      string    `gorm:"column:blank_answer_value;type:text;not null" json:"blank_answer_value"`
	BlankAnswerIsCorrect  bool      `gorm:"column:blank_answer_is_correct;not null;default:true" json:"blank_answer_is_correct"`

	BlankAnswerCreatedAt time.Time `gorm:"column:blank_answer_created_at;autoCreateTime" json:"blank_answer_created_at"`
}

func (BlankAnswerModel) TableName() string { return "blank_answers" }

// MatchingPairModel: pasangan kiri↔kanan; order = urutan kanonik sisi kiri.
// Sisi kanan di-shuffle hanya saat display ke student.
type MatchingPairModel struct {
	MatchingPairID         uuid.UUID `gorm:"column:matching_pair_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"matching_pair_id"`
	MatchingPairQuestionID uuid.UUID `gorm:"column:matching_pair_question_id;type:uuid;not null;index:idx_matching_pairs_question" json:"matching_pair_question_id"`
	MatchingPairLeftItem   string    `gorm:"column:matching_pair_left_item;type:text;not null" json:"matching_pair_left_item"`
	MatchingPairRightItem  string    `gorm:"column:matching_pair_right_item;type:text;not null" json:"matching_pair_right_item"`
	MatchingPairOrder      int       `gorm:"column:matching_pair_order;not null" json:"matching_pair_order"`

	MatchingPairCreatedAt time.Time `gorm:"column:matching_pair_created_at;autoCreateTime" json:"matching_pair_created_at"`
}

func (MatchingPairModel) TableName() string { return "matching_pairs" }
