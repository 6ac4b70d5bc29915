package migrate

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"helpdesk/internal/domain/organization"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

var seedFile string

// seedFixture is the YAML shape of a fixtures file: organizations with
// their theme, and users with per-organization roles.
type seedFixture struct {
	Organizations []struct {
		Name           string `yaml:"name"`
		Slug           string `yaml:"slug"`
		PrimaryColor   string `yaml:"primary_color"`
		SecondaryColor string `yaml:"secondary_color"`
		AccentColor    string `yaml:"accent_color"`
		LogoURL        string `yaml:"logo_url"`
	} `yaml:"organizations"`
	Users []struct {
		Name        string `yaml:"name"`
		Email       string `yaml:"email"`
		Password    string `yaml:"password"`
		Memberships []struct {
			Organization string `yaml:"organization"`
			Role         string `yaml:"role"`
		} `yaml:"memberships"`
	} `yaml:"users"`
}

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load organizations and users from a fixtures file",
		Long:  `Load organizations, users and memberships from a YAML fixtures file. Existing records (matched by slug or email) are left untouched.`,
		RunE:  runSeed,
	}

	cmd.Flags().StringVarP(&seedFile, "file", "f", "configs/seed.yaml", "Path to the fixtures file")

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	raw, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read fixtures file: %w", err)
	}

	var fixture seedFixture
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		return fmt.Errorf("failed to parse fixtures file: %w", err)
	}

	ctx := context.Background()
	gdb := database.Get()
	orgRepo := repository.NewOrganizationRepository(gdb)
	userRepo := repository.NewUserRepository(gdb)
	membershipRepo := repository.NewMembershipRepository(gdb)
	hasher := auth.NewBcryptPasswordHasher(config.Get().Auth.BcryptCost)

	orgsBySlug := make(map[string]*organization.Organization)

	for _, o := range fixture.Organizations {
		slug := o.Slug
		if slug == "" {
			slug = utils.Slugify(o.Name)
		}

		if existing, err := orgRepo.GetBySlug(ctx, slug); err == nil {
			log.Infow("organization already exists", "slug", slug)
			orgsBySlug[slug] = existing
			continue
		}

		org, err := organization.NewOrganization(o.Name, slug, organization.Theme{
			PrimaryColor:   o.PrimaryColor,
			SecondaryColor: o.SecondaryColor,
			AccentColor:    o.AccentColor,
		}, o.LogoURL)
		if err != nil {
			return fmt.Errorf("invalid organization %q: %w", o.Name, err)
		}
		if err := orgRepo.Save(ctx, org); err != nil {
			return fmt.Errorf("failed to save organization %q: %w", o.Name, err)
		}
		orgsBySlug[slug] = org
		log.Infow("organization created", "slug", slug)
	}

	for _, u := range fixture.Users {
		seeded, err := seedUser(ctx, log, userRepo, hasher, u.Email, u.Name, u.Password)
		if err != nil {
			return err
		}

		for _, m := range u.Memberships {
			org, ok := orgsBySlug[m.Organization]
			if !ok {
				if org, err = orgRepo.GetBySlug(ctx, m.Organization); err != nil {
					return fmt.Errorf("membership for %q references unknown organization %q", u.Email, m.Organization)
				}
				orgsBySlug[m.Organization] = org
			}

			if _, err := membershipRepo.Get(ctx, seeded.ID(), org.ID()); err == nil {
				continue
			}

			role, err := organization.NewRole(m.Role)
			if err != nil {
				return fmt.Errorf("invalid role for %q in %q: %w", u.Email, m.Organization, err)
			}
			membership, err := organization.NewMembership(seeded.ID(), org.ID(), role)
			if err != nil {
				return fmt.Errorf("invalid membership for %q: %w", u.Email, err)
			}
			if err := membershipRepo.Save(ctx, membership); err != nil {
				return fmt.Errorf("failed to save membership for %q: %w", u.Email, err)
			}
			log.Infow("membership created", "email", u.Email, "organization", m.Organization, "role", m.Role)
		}
	}

	log.Infow("seed completed", "file", seedFile)
	return nil
}

func seedUser(ctx context.Context, log logger.Interface, userRepo *repository.UserRepository, hasher user.PasswordHasher, email, name, password string) (*user.User, error) {
	if existing, err := userRepo.GetByEmail(ctx, email); err == nil {
		log.Infow("user already exists", "email", email)
		return existing, nil
	}

	u, err := user.NewUser(email, name)
	if err != nil {
		return nil, fmt.Errorf("invalid user %q: %w", email, err)
	}
	if err := u.SetPassword(password, hasher); err != nil {
		return nil, fmt.Errorf("failed to set password for %q: %w", email, err)
	}
	if err := userRepo.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to save user %q: %w", email, err)
	}
	log.Infow("user created", "email", email)
	return u, nil
}
