package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kosmi-edu/kosmi/internal/auth"
	"github.com/kosmi-edu/kosmi/internal/config"
	"github.com/kosmi-edu/kosmi/internal/store"
)

var tokenCmd = &cobra.Command{
	Use:   "token [profile-id]",
	Short: "Mint a development bearer token",
	Long: `Print a signed bearer token for an existing profile, or create a profile
first with --role and --name. Tokens are signed with KOSMI_JWT_SECRET, so
they are accepted by a server sharing that secret.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().String("role", "", "Create a profile with this role: student, parent or school_admin")
	tokenCmd.Flags().String("name", "", "Name of the created profile")
	tokenCmd.Flags().Int("grade", 0, "Groep of a created student (1-8)")
	tokenCmd.Flags().String("parent", "", "Parent profile id of a created student")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")
}

func runToken(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.ServerFromEnv()
	if cfg.JWTSecret == "" {
		return errors.New("KOSMI_JWT_SECRET is required")
	}
	role, _ := cmd.Flags().GetString("role")
	name, _ := cmd.Flags().GetString("name")
	grade, _ := cmd.Flags().GetInt("grade")
	parent, _ := cmd.Flags().GetString("parent")
	ttl, _ := cmd.Flags().GetDuration("ttl")

	if (len(args) == 1) == (role != "") {
		return errors.New("pass either a profile id or --role and --name")
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	profiles := s.ProfileRepo()

	var p *store.Profile
	if len(args) == 1 {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid profile id %q: %w", args[0], err)
		}
		if p, err = profiles.Get(ctx, id); err != nil {
			return fmt.Errorf("load profile %s: %w", id, err)
		}
	} else {
		r := store.Role(role)
		if !r.Valid() {
			return fmt.Errorf("unknown role %q", role)
		}
		if name == "" {
			return errors.New("--name is required when creating a profile")
		}
		np := store.Profile{Role: r, Name: name, Grade: grade}
		if p, err = createProfile(ctx, profiles, np, parent); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Created %s %s (%s)\n", p.Role, p.Name, p.ID)
	}

	tok, err := auth.NewIssuer(cfg.JWTSecret, cfg.JWTIssuer, ttl).Issue(p.ID)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}

func createProfile(ctx context.Context, profiles store.ProfileRepo, p store.Profile, parent string) (*store.Profile, error) {
	if parent == "" {
		return profiles.Create(ctx, p)
	}
	if p.Role != store.RoleStudent {
		return nil, errors.New("--parent only applies to students")
	}
	pid, err := uuid.Parse(parent)
	if err != nil {
		return nil, fmt.Errorf("invalid parent id %q: %w", parent, err)
	}
	return profiles.AddChild(ctx, pid, p)
}
