package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kosmi-edu/kosmi/ent"
	"github.com/kosmi-edu/kosmi/ent/parentchildlink"
	"github.com/kosmi-edu/kosmi/ent/profile"
)

type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	p, err := r.client.Profile.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	out := toProfile(p)
	return &out, nil
}

func (r *profileRepo) Create(ctx context.Context, p Profile) (*Profile, error) {
	created, err := createProfile(ctx, r.client.Profile, p)
	if err != nil {
		return nil, err
	}
	out := toProfile(created)
	return &out, nil
}

func (r *profileRepo) AddChild(ctx context.Context, parentID uuid.UUID, child Profile) (*Profile, error) {
	var created *ent.Profile
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		parent, err := tx.Profile.Get(ctx, parentID)
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get parent: %w", err)
		}
		if Role(parent.Role) != RoleParent {
			return fmt.Errorf("profile is a %s, not a parent", parent.Role)
		}

		child.Role = RoleStudent
		child.ParentID = &parentID
		created, err = createProfile(ctx, tx.Profile, child)
		if err != nil {
			return err
		}

		err = tx.ParentChildLink.Create().
			SetParentID(parentID).
			SetChildID(created.ID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("link child: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toProfile(created)
	return &out, nil
}

func (r *profileRepo) Children(ctx context.Context, parentID uuid.UUID) ([]Profile, error) {
	links, err := r.client.ParentChildLink.Query().
		Where(parentchildlink.ParentID(parentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query child links: %w", err)
	}
	if len(links) == 0 {
		return nil, nil
	}
	childIDs := make([]uuid.UUID, len(links))
	for i, l := range links {
		childIDs[i] = l.ChildID
	}

	rows, err := r.client.Profile.Query().
		Where(profile.IDIn(childIDs...)).
		Order(ent.Asc(profile.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query children: %w", err)
	}
	out := make([]Profile, len(rows))
	for i, p := range rows {
		out[i] = toProfile(p)
	}
	return out, nil
}

func createProfile(ctx context.Context, c *ent.ProfileClient, p Profile) (*ent.Profile, error) {
	if !p.Role.Valid() {
		return nil, fmt.Errorf("create profile: unknown role %q", p.Role)
	}
	builder := c.Create().
		SetRole(string(p.Role)).
		SetName(p.Name).
		SetDisplayName(p.DisplayName).
		SetPointsTotal(p.PointsTotal)
	if p.ID != uuid.Nil {
		builder = builder.SetID(p.ID)
	}
	if p.Grade > 0 {
		builder = builder.SetGrade(p.Grade)
	}
	if p.ParentID != nil {
		builder = builder.SetParentID(*p.ParentID)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return created, nil
}

func toProfile(p *ent.Profile) Profile {
	out := Profile{
		ID:          p.ID,
		Role:        Role(p.Role),
		Name:        p.Name,
		DisplayName: p.DisplayName,
		ParentID:    p.ParentID,
		PointsTotal: p.PointsTotal,
		CreatedAt:   p.CreatedAt,
	}
	if p.Grade != nil {
		out.Grade = *p.Grade
	}
	return out
}
