package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/domain/shared"
)

// UserRow is the persistence model for identity.User. Users are not
// owner-scoped: they are the owners.
type UserRow struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Email        string            `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string            `gorm:"column:password_hash;type:varchar(200);not null"`
	FullName     string            `gorm:"column:full_name;type:varchar(200)"`
	CompanyName  string            `gorm:"column:company_name;type:varchar(200)"`
	Role         identity.Role     `gorm:"type:varchar(20);not null;default:'Member'"`
	Permissions  JSONSlice[string] `gorm:"type:jsonb"`
	IsApproved   bool              `gorm:"column:is_approved;not null;default:false"`
	CreatedAt    time.Time         `gorm:"not null"`
	UpdatedAt    time.Time         `gorm:"not null"`
}

// TableName returns the table name for GORM
func (UserRow) TableName() string { return "users" }

// ToRecord converts the row to its application record
func (r UserRow) ToRecord() identity.User {
	perms := make([]shared.View, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		perms = append(perms, shared.View(p))
	}
	return identity.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		FullName:     r.FullName,
		CompanyName:  r.CompanyName,
		Role:         r.Role,
		Permissions:  perms,
		IsApproved:   r.IsApproved,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// UserRowFromRecord builds the row written back to the remote store
func UserRowFromRecord(rec identity.User) UserRow {
	perms := make(JSONSlice[string], 0, len(rec.Permissions))
	for _, p := range rec.Permissions {
		perms = append(perms, string(p))
	}
	return UserRow{
		ID:           rec.ID,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		FullName:     rec.FullName,
		CompanyName:  rec.CompanyName,
		Role:         rec.Role,
		Permissions:  perms,
		IsApproved:   rec.IsApproved,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

// ProfileRow is the persistence model for identity.Profile. One row per
// owner; owner_id is unique.
type ProfileRow struct {
	BaseRow
	FullName             string                                     `gorm:"column:full_name;type:varchar(200)"`
	Email                string                                     `gorm:"type:varchar(200)"`
	Phone                string                                     `gorm:"type:varchar(50)"`
	CompanyName          string                                     `gorm:"column:company_name;type:varchar(200)"`
	Website              string                                     `gorm:"type:varchar(300)"`
	Address              string                                     `gorm:"type:text"`
	BankAccount          string                                     `gorm:"column:bank_account;type:varchar(200)"`
	AuthorizedSigner     string                                     `gorm:"column:authorized_signer;type:varchar(200)"`
	IDNumber             string                                     `gorm:"column:id_number;type:varchar(100)"`
	Bio                  string                                     `gorm:"type:text"`
	IncomeCategories     JSONSlice[string]                          `gorm:"column:income_categories;type:jsonb"`
	ExpenseCategories    JSONSlice[string]                          `gorm:"column:expense_categories;type:jsonb"`
	ProjectTypes         JSONSlice[string]                          `gorm:"column:project_types;type:jsonb"`
	EventTypes           JSONSlice[string]                          `gorm:"column:event_types;type:jsonb"`
	AssetCategories      JSONSlice[string]                          `gorm:"column:asset_categories;type:jsonb"`
	SOPCategories        JSONSlice[string]                          `gorm:"column:sop_categories;type:jsonb"`
	PackageCategories    JSONSlice[string]                          `gorm:"column:package_categories;type:jsonb"`
	ProjectStatusConfig  JSONSlice[identity.ProjectStatusConfig]    `gorm:"column:project_status_config;type:jsonb"`
	NotificationSettings JSONObject[identity.NotificationSettings]  `gorm:"column:notification_settings;type:jsonb"`
	SecuritySettings     JSONObject[identity.SecuritySettings]      `gorm:"column:security_settings;type:jsonb"`
	BriefingTemplate     string                                     `gorm:"column:briefing_template;type:text"`
	TermsAndConditions   string                                     `gorm:"column:terms_and_conditions;type:text"`
	ContractTemplate     string                                     `gorm:"column:contract_template;type:text"`
	LogoBase64           string                                     `gorm:"column:logo_base64;type:text"`
	BrandColor           string                                     `gorm:"column:brand_color;type:varchar(20)"`
	PublicPageConfig     JSONObject[identity.PublicPageConfig]      `gorm:"column:public_page_config;type:jsonb"`
	PackageShareTemplate string                                     `gorm:"column:package_share_template;type:text"`
	BookingFormTemplate  string                                     `gorm:"column:booking_form_template;type:text"`
	ChatTemplates        JSONSlice[identity.ChatTemplate]           `gorm:"column:chat_templates;type:jsonb"`
}

// TableName returns the table name for GORM
func (ProfileRow) TableName() string { return "profiles" }

// ToRecord converts the row to its application record
func (r ProfileRow) ToRecord() identity.Profile {
	return identity.Profile{
		ID:                   r.ID,
		AdminUserID:          r.OwnerID,
		FullName:             r.FullName,
		Email:                r.Email,
		Phone:                r.Phone,
		CompanyName:          r.CompanyName,
		Website:              r.Website,
		Address:              r.Address,
		BankAccount:          r.BankAccount,
		AuthorizedSigner:     r.AuthorizedSigner,
		IDNumber:             r.IDNumber,
		Bio:                  r.Bio,
		IncomeCategories:     sliceOrEmpty(r.IncomeCategories),
		ExpenseCategories:    sliceOrEmpty(r.ExpenseCategories),
		ProjectTypes:         sliceOrEmpty(r.ProjectTypes),
		EventTypes:           sliceOrEmpty(r.EventTypes),
		AssetCategories:      sliceOrEmpty(r.AssetCategories),
		SOPCategories:        sliceOrEmpty(r.SOPCategories),
		PackageCategories:    sliceOrEmpty(r.PackageCategories),
		ProjectStatusConfigs: sliceOrEmpty(r.ProjectStatusConfig),
		NotificationSettings: r.NotificationSettings.Data,
		SecuritySettings:     r.SecuritySettings.Data,
		BriefingTemplate:     r.BriefingTemplate,
		TermsAndConditions:   r.TermsAndConditions,
		ContractTemplate:     r.ContractTemplate,
		LogoBase64:           r.LogoBase64,
		BrandColor:           r.BrandColor,
		PublicPageConfig:     r.PublicPageConfig.Data,
		PackageShareTemplate: r.PackageShareTemplate,
		BookingFormTemplate:  r.BookingFormTemplate,
		ChatTemplates:        sliceOrEmpty(r.ChatTemplates),
	}
}

// ProfileRowFromRecord builds the row written back to the remote store
func ProfileRowFromRecord(rec identity.Profile) ProfileRow {
	return ProfileRow{
		BaseRow:              newBaseRow(rec.AdminUserID, rec.ID, time.Time{}),
		FullName:             rec.FullName,
		Email:                rec.Email,
		Phone:                rec.Phone,
		CompanyName:          rec.CompanyName,
		Website:              rec.Website,
		Address:              rec.Address,
		BankAccount:          rec.BankAccount,
		AuthorizedSigner:     rec.AuthorizedSigner,
		IDNumber:             rec.IDNumber,
		Bio:                  rec.Bio,
		IncomeCategories:     JSONSlice[string](rec.IncomeCategories),
		ExpenseCategories:    JSONSlice[string](rec.ExpenseCategories),
		ProjectTypes:         JSONSlice[string](rec.ProjectTypes),
		EventTypes:           JSONSlice[string](rec.EventTypes),
		AssetCategories:      JSONSlice[string](rec.AssetCategories),
		SOPCategories:        JSONSlice[string](rec.SOPCategories),
		PackageCategories:    JSONSlice[string](rec.PackageCategories),
		ProjectStatusConfig:  JSONSlice[identity.ProjectStatusConfig](rec.ProjectStatusConfigs),
		NotificationSettings: JSONObject[identity.NotificationSettings]{Data: rec.NotificationSettings},
		SecuritySettings:     JSONObject[identity.SecuritySettings]{Data: rec.SecuritySettings},
		BriefingTemplate:     rec.BriefingTemplate,
		TermsAndConditions:   rec.TermsAndConditions,
		ContractTemplate:     rec.ContractTemplate,
		LogoBase64:           rec.LogoBase64,
		BrandColor:           rec.BrandColor,
		PublicPageConfig:     JSONObject[identity.PublicPageConfig]{Data: rec.PublicPageConfig},
		PackageShareTemplate: rec.PackageShareTemplate,
		BookingFormTemplate:  rec.BookingFormTemplate,
		ChatTemplates:        JSONSlice[identity.ChatTemplate](rec.ChatTemplates),
	}
}
