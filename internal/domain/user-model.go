package domain

import "time"

const (
	RoleAdmin    = "ADMIN"
	RoleManager  = "MANAGER"
	RoleEmployee = "EMPLOYEE"
)

const (
	BranchMarketing = "MARKETING"
	BranchEstate    = "ESTATE"
	BranchMining    = "MINING"
)

// DefaultAvatarURL is the placeholder pair value used until a real image
// is uploaded; the public id defaults to the user's own email.
const DefaultAvatarURL = "123"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FullName     string `gorm:"not null" json:"fullName"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"uniqueIndex;not null" json:"phone"`
	PasswordHash string `json:"-"`

	Role    string `gorm:"type:varchar(20)" json:"role,omitempty"`
	Profile string `json:"profile,omitempty"`
	Branch  string `gorm:"type:varchar(20)" json:"branch,omitempty"`

	AvatarPublicID  string `json:"avatarPublicId"`
	AvatarSecureURL string `json:"avatarUrl"`

	// both nil/empty, or both set; cleared after a reset is consumed
	ResetTokenHash      string     `json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`

	Todos []TodoItem `json:"todo,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const (
	TodoPending   = "PENDING"
	TodoCompleted = "COMPLETED"

	TodoStarYes = "YES"
	TodoStarNo  = "NO"
)

type TodoItem struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index;not null" json:"-"`
	Title  string `json:"title"`
	Status string `gorm:"type:varchar(20);not null;default:PENDING" json:"status"`
	Star   string `gorm:"type:varchar(5);not null;default:NO" json:"star"`
}
