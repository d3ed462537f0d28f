package domain

import "time"

// Ad is a classified listing. OwnerID is set once at creation and never
// patched; it is nullable so a removed owner degrades to an ownerless ad
// instead of a broken reference.
type Ad struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null;index"`
	Description string    `json:"description"`
	OwnerID     *uint     `json:"owner_id" gorm:"index"`
	Owner       *User     `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time `json:"created_at"`
}
