package models

// ThesisModel is a persisted investment thesis. The thesis text is written
// once on create and never updated.
type ThesisModel struct {
	Base
	UserID string `json:"-"      gorm:"index"`
	Text   string `json:"text"   gorm:"type:text;not null"`
	Thesis string `json:"thesis" gorm:"type:text;not null"`
}

func (ThesisModel) TableName() string { return "theses" }
