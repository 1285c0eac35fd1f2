package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pms_marketplace/internal/app"
	"pms_marketplace/internal/shared"
)

func seedConfig() shared.Config {
	return shared.Config{CatalogSource: "seed"}
}

func TestSearchCmd_SeedCatalog(t *testing.T) {
	var out bytes.Buffer
	cmd := SearchCmd(seedConfig())
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--location", "limassol"})
	require.NoError(t, cmd.Execute())

	var cards []app.PropertyCard
	require.NoError(t, json.Unmarshal(out.Bytes(), &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "prop-002", cards[0].ID)
	assert.Equal(t, "€1,800/month", cards[0].PriceLabel)
}

func TestVendorsCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := VendorsCmd(seedConfig())
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--category", "supplies"})
	require.NoError(t, cmd.Execute())

	var sec app.VendorsSection
	require.NoError(t, json.Unmarshal(out.Bytes(), &sec))
	require.Len(t, sec.Items, 1)
	assert.Equal(t, "vendor-003", sec.Items[0].ID)

	bad := VendorsCmd(seedConfig())
	bad.SetOut(&out)
	bad.SetErr(&out)
	bad.SetArgs([]string{"--category", "plumbing"})
	assert.Error(t, bad.Execute())
}
