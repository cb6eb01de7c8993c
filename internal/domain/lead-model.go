package domain

import "time"

const (
	OrgCRC    = "crc"
	OrgM3M    = "m3m"
	OrgGodrej = "godrej"
	OrgBotani = "botani"
)

type Lead struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"not null" json:"fullName"`
	Email    string `gorm:"not null;uniqueIndex:uidx_leads_email_org" json:"email"`
	Phone    string `gorm:"not null" json:"phone"`
	Org      string `gorm:"type:varchar(20);uniqueIndex:uidx_leads_email_org" json:"org,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
