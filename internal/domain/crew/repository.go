package crew

import (
	"context"
	"time"
)

// MemberRecord is the persisted form of a crew row, owned by a project.
type MemberRecord struct {
	ID         string
	ProjectID  string
	Department Code
	Role       string
	Name       *string
	Phone      *string
	Email      *string
	CallTime   *string
	Location   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Member strips the persistence fields down to the layout entity.
func (r MemberRecord) Member() Member {
	return Member{
		ID:       r.ID,
		Role:     r.Role,
		Name:     r.Name,
		Phone:    r.Phone,
		Email:    r.Email,
		CallTime: r.CallTime,
		Location: r.Location,
	}
}

type CrewRepository interface {
	CreateMember(ctx context.Context, m MemberRecord) (MemberRecord, error)
	GetByID(ctx context.Context, id string) (MemberRecord, error)
	ListByProject(ctx context.Context, projectID string) ([]MemberRecord, error)
	UpdateMember(ctx context.Context, m MemberRecord) (MemberRecord, error)
	DeleteMember(ctx context.Context, id string) error
}
