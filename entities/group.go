package entities

const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusDeclined = "declined"
)

type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OwnerUserID uint   `gorm:"not null;index" json:"owner_user_id"`
	Name        string `gorm:"not null" json:"name"`

	Owner   *User          `gorm:"foreignKey:OwnerUserID" json:"-"`
	Members []*GroupMember `gorm:"foreignKey:GroupID" json:"-"`
	Timestamp
}

type GroupMember struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	GroupID         uint    `gorm:"not null;uniqueIndex:idx_group_user" json:"group_id"`
	UserID          uint    `gorm:"not null;uniqueIndex:idx_group_user" json:"user_id"`
	PreferenceLabel *string `json:"preference_label,omitempty"`

	Group *Group `gorm:"foreignKey:GroupID" json:"-"`
	User  *User  `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

type GroupInvite struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	GroupID         uint    `gorm:"not null;index" json:"group_id"`
	InviterUserID   uint    `gorm:"not null" json:"inviter_user_id"`
	InvitedUserID   uint    `gorm:"not null;index" json:"invited_user_id"`
	PreferenceLabel *string `json:"preference_label,omitempty"`
	Status          string  `gorm:"size:20;not null;default:'pending'" json:"status"`

	Group       *Group `gorm:"foreignKey:GroupID" json:"-"`
	Inviter     *User  `gorm:"foreignKey:InviterUserID" json:"-"`
	InvitedUser *User  `gorm:"foreignKey:InvitedUserID" json:"-"`
	Timestamp
}
