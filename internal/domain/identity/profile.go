package identity

import (
	"context"

	"github.com/google/uuid"
)

// SubStatusConfig is one configurable sub-status under a project status
type SubStatusConfig struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

// ProjectStatusConfig is one configurable project status with its sub-statuses
type ProjectStatusConfig struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Color       string            `json:"color"`
	SubStatuses []SubStatusConfig `json:"subStatuses"`
	Note        string            `json:"note"`
}

// NotificationSettings controls which events produce notifications
type NotificationSettings struct {
	NewProject          bool `json:"newProject"`
	PaymentConfirmation bool `json:"paymentConfirmation"`
	DeadlineReminder    bool `json:"deadlineReminder"`
}

// SecuritySettings holds account security configuration
type SecuritySettings struct {
	TwoFactorEnabled bool `json:"twoFactorEnabled"`
}

// PublicPageConfig configures the public package-listing page
type PublicPageConfig struct {
	Template      string   `json:"template"`
	Title         string   `json:"title"`
	Introduction  string   `json:"introduction"`
	GalleryImages []string `json:"galleryImages"`
}

// ChatTemplate is a reusable message template
type ChatTemplate struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Template string `json:"template"`
}

// Profile is the single business-configuration record owned by a user:
// company metadata, category taxonomies, templates and branding. It is
// read-mostly and only ever mutated through Settings.
type Profile struct {
	ID                   uuid.UUID             `json:"id"`
	AdminUserID          uuid.UUID             `json:"adminUserId"`
	FullName             string                `json:"fullName"`
	Email                string                `json:"email"`
	Phone                string                `json:"phone"`
	CompanyName          string                `json:"companyName"`
	Website              string                `json:"website"`
	Address              string                `json:"address"`
	BankAccount          string                `json:"bankAccount"`
	AuthorizedSigner     string                `json:"authorizedSigner"`
	IDNumber             string                `json:"idNumber"`
	Bio                  string                `json:"bio"`
	IncomeCategories     []string              `json:"incomeCategories"`
	ExpenseCategories    []string              `json:"expenseCategories"`
	ProjectTypes         []string              `json:"projectTypes"`
	EventTypes           []string              `json:"eventTypes"`
	AssetCategories      []string              `json:"assetCategories"`
	SOPCategories        []string              `json:"sopCategories"`
	PackageCategories    []string              `json:"packageCategories"`
	ProjectStatusConfigs []ProjectStatusConfig `json:"projectStatusConfig"`
	NotificationSettings NotificationSettings  `json:"notificationSettings"`
	SecuritySettings     SecuritySettings      `json:"securitySettings"`
	BriefingTemplate     string                `json:"briefingTemplate"`
	TermsAndConditions   string                `json:"termsAndConditions"`
	ContractTemplate     string                `json:"contractTemplate"`
	LogoBase64           string                `json:"logoBase64"`
	BrandColor           string                `json:"brandColor"`
	PublicPageConfig     PublicPageConfig      `json:"publicPageConfig"`
	PackageShareTemplate string                `json:"packageShareTemplate"`
	BookingFormTemplate  string                `json:"bookingFormTemplate"`
	ChatTemplates        []ChatTemplate        `json:"chatTemplates"`
}

// DefaultBrandColor is used when no profile exists or no color is configured
const DefaultBrandColor = "#3b82f6"

// DefaultProfile returns the degraded-but-usable profile substituted when an
// authenticated user has no stored profile row. The session stays functional;
// Settings later persists a real profile.
func DefaultProfile(user *User) Profile {
	p := Profile{
		AdminUserID:       user.ID,
		FullName:          user.FullName,
		Email:             user.Email,
		CompanyName:       user.CompanyName,
		IncomeCategories:  []string{"DP Proyek", "Pelunasan Proyek", "Lainnya"},
		ExpenseCategories: []string{"Operasional", "Peralatan", "Transport", "Lainnya"},
		ProjectTypes:      []string{"Pernikahan", "Lamaran", "Prewedding"},
		EventTypes:        []string{"Meeting Klien", "Survey Lokasi", "Libur"},
		AssetCategories:   []string{"Kamera", "Lensa", "Lighting", "Audio"},
		SOPCategories:     []string{"Fotografi", "Videografi", "Editing"},
		PackageCategories: []string{"Pernikahan", "Lamaran", "Prewedding"},
		NotificationSettings: NotificationSettings{
			NewProject:          true,
			PaymentConfirmation: true,
			DeadlineReminder:    true,
		},
		BrandColor: DefaultBrandColor,
		PublicPageConfig: PublicPageConfig{
			Template:      "modern",
			Title:         "Paket Layanan Kami",
			Introduction:  "Pilih paket yang sesuai dengan kebutuhan acara Anda.",
			GalleryImages: []string{},
		},
		ProjectStatusConfigs: []ProjectStatusConfig{},
		ChatTemplates:        []ChatTemplate{},
	}
	if p.CompanyName == "" {
		p.CompanyName = "Vena Pictures"
	}
	return p
}

// ProfileRepository provides access to the per-user profile record
type ProfileRepository interface {
	// FindByOwner returns the profile owned by ownerID, or
	// shared.ErrProfileMissing when no profile row exists.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
}
