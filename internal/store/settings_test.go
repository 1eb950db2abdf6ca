package store

import (
	"context"
	"testing"

	"github.com/diewo77/quotemaster/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettingsDefaults(t *testing.T) {
	s := setupTestStore(t)

	got, err := s.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", got.BusinessName)
	assert.Equal(t, "", got.PaypalEmail)
	assert.False(t, got.VATEnabled)
	assertDecimal(t, "20", got.VATRate)
	assertDecimal(t, "30", got.MarkupPercentage)
	assert.Equal(t, "GBP", got.Currency)
	assert.Nil(t, got.LogoBase64)
	assert.Nil(t, got.CompanyTaxID)
}

func TestUpdateSettingsRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	want := models.Settings{
		BusinessName:        "Acme Plumbing",
		BusinessOwner:       "Jo Bloggs",
		BusinessEmail:       "jo@acme.test",
		BusinessPhone:       "01234 567890",
		BusinessAddress:     "2 Pipe Lane",
		BusinessWebsite:     "https://acme.test",
		VATEnabled:          true,
		VATRate:             dec("17.5"),
		MarkupPercentage:    dec("42.25"),
		Currency:            "EUR",
		BankDetails:         "Sort 00-00-00",
		PaypalEmail:         "pay@acme.test",
		LogoBase64:          strPtr("iVBORw0KGgo="),
		BrandColor:          strPtr("#ff0000"),
		TermsConditions:     strPtr("Payment within 30 days"),
		CompanyTaxID:        strPtr("GB123456789"),
		CompanyRegistration: strPtr("01234567"),
	}
	require.NoError(t, s.UpdateSettings(ctx, want))

	got, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.BusinessName, got.BusinessName)
	assert.Equal(t, want.BusinessOwner, got.BusinessOwner)
	assert.Equal(t, want.BusinessWebsite, got.BusinessWebsite)
	assert.True(t, got.VATEnabled)
	assertDecimal(t, "17.5", got.VATRate)
	assertDecimal(t, "42.25", got.MarkupPercentage)
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, "Sort 00-00-00", got.BankDetails)
	assert.Equal(t, "iVBORw0KGgo=", *got.LogoBase64)
	assert.Nil(t, got.LogoPath)
	assert.Equal(t, "#ff0000", *got.BrandColor)
	assert.Nil(t, got.PaymentInstructions)
	assert.Equal(t, "GB123456789", *got.CompanyTaxID)

	var raw int
	require.NoError(t, s.db.Raw("SELECT vat_enabled FROM settings WHERE id = 1").Scan(&raw).Error)
	assert.Equal(t, 1, raw)

	// Clearing optional fields and switching VAT off is a full replacement too.
	want.VATEnabled = false
	want.LogoBase64 = nil
	require.NoError(t, s.UpdateSettings(ctx, want))

	got, err = s.GetSettings(ctx)
	require.NoError(t, err)
	assert.False(t, got.VATEnabled)
	assert.Nil(t, got.LogoBase64)
	require.NoError(t, s.db.Raw("SELECT vat_enabled FROM settings WHERE id = 1").Scan(&raw).Error)
	assert.Equal(t, 0, raw)
}

func TestSettingsMissingRow(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.db.Exec("DELETE FROM settings").Error)

	_, err := s.GetSettings(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.UpdateSettings(ctx, models.DefaultSettings())
	assert.ErrorIs(t, err, ErrNotFound)

	var n int64
	require.NoError(t, s.db.Model(&models.Settings{}).Count(&n).Error)
	assert.Zero(t, n, "update must not recreate the row")
}

func TestUpdateSettingsKeepsFullPrecision(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	settings := models.DefaultSettings()
	settings.VATRate = dec("20.123456789012345678")
	settings.MarkupPercentage = dec("120")
	settings.Currency = ""
	require.NoError(t, s.UpdateSettings(ctx, settings))

	got, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "20.123456789012345678", got.VATRate.String())
	assertDecimal(t, "120", got.MarkupPercentage)
	assert.Equal(t, "", got.Currency)
}
