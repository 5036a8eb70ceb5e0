package models

// Setting is a key/value row of slow-changing configuration.
type Setting struct {
	Name  string  `gorm:"primaryKey;column:name" json:"name"`
	Value *string `gorm:"column:value" json:"value,omitempty"`
}

func (Setting) TableName() string {
	return "settings"
}
