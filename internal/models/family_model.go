package models

import "time"

// Family link lifecycle states.
const (
	LinkStatusPending = "pending"
	LinkStatusActive  = "active"
)

// Permissions granted to a linked family member.
type Permissions struct {
	CanViewFamily   bool `json:"canViewFamily" firestore:"canViewFamily"`
	CanManageFamily bool `json:"canManageFamily" firestore:"canManageFamily"`
}

// FamilyLink is a directed relationship record: the admin identity grants
// a second identity visibility into their health data. Links are created
// pending by an invitation; the transition to active is recorded here but
// driven by the external identity provider when the invitee accepts.
type FamilyLink struct {
	ID           string      `json:"id" firestore:"-"`
	AdminID      string      `json:"familyAdminId" firestore:"familyAdminId"`
	MemberRef    string      `json:"memberRef,omitempty" firestore:"memberRef,omitempty"` // member user id once active
	Email        string      `json:"email" firestore:"email"`
	FullName     string      `json:"fullName" firestore:"fullName"`
	Relationship string      `json:"relationship" firestore:"relationship"`
	Status       string      `json:"status" firestore:"status"`
	Permissions  Permissions `json:"permissions" firestore:"permissions"`
	CreatedAt    time.Time   `json:"createdAt" firestore:"createdAt"`
}
