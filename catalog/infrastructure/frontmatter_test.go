package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/XaaXaaX/sdk/catalog/domain"
)

func TestParseDocument(t *testing.T) {
	doc := []byte(`---
id: Payment
name: Payment
version: 0.0.1
summary: Handles all payments
services:
  - id: PaymentService
    version: 0.0.1
owner: checkout-team
badges: true
---
# Payment

All things payments.`)

	resource, err := ParseDocument(doc)
	require.NoError(t, err)

	require.Equal(t, "Payment", resource.ID)
	require.Equal(t, "0.0.1", resource.Version)
	require.Equal(t, "Handles all payments", resource.Summary)
	require.Equal(t, []domain.ServiceRef{{ID: "PaymentService", Version: "0.0.1"}}, resource.Services)
	require.Equal(t, "# Payment\n\nAll things payments.", resource.Markdown)

	// Unknown keys land in Extensions, preserved verbatim.
	require.Equal(t, "checkout-team", resource.Extensions["owner"])
	require.Equal(t, true, resource.Extensions["badges"])
}

func TestParseDocument_EmptyBody(t *testing.T) {
	doc := []byte("---\nid: Payment\nname: Payment\nversion: 0.0.1\n---\n")

	resource, err := ParseDocument(doc)
	require.NoError(t, err)
	require.Equal(t, "Payment", resource.ID)
	require.Empty(t, resource.Markdown)
}

func TestParseDocument_DelimiterLikeLineInsideBlockScalar(t *testing.T) {
	doc := []byte(`---
id: Payment
name: Payment
version: 0.0.1
notes: |
  --- not a delimiter ---
  more notes
---
# Payment
`)

	resource, err := ParseDocument(doc)
	require.NoError(t, err)
	require.Equal(t, "Payment", resource.ID)
	require.Equal(t, "--- not a delimiter ---\nmore notes\n", resource.Extensions["notes"])
	require.Equal(t, "# Payment\n", resource.Markdown)
}

func TestParseDocument_BodyMayContainDelimiterLines(t *testing.T) {
	doc := []byte("---\nid: Payment\nname: Payment\nversion: 0.0.1\n---\nabove\n---\nbelow\n")

	resource, err := ParseDocument(doc)
	require.NoError(t, err)
	require.Equal(t, "above\n---\nbelow\n", resource.Markdown)
}

func TestParseDocument_NoFrontMatter(t *testing.T) {
	_, err := ParseDocument([]byte("# Just markdown\n"))
	require.Error(t, err)
}

func TestParseDocument_UnterminatedFrontMatter(t *testing.T) {
	_, err := ParseDocument([]byte("---\nid: Payment\n"))
	require.Error(t, err)
}

func TestMarshalParse_RoundTrip(t *testing.T) {
	resource := &domain.Resource{
		ID:      "Payment",
		Name:    "Payment",
		Version: "0.0.1",
		Summary: "Handles all payments",
		Services: []domain.ServiceRef{
			{ID: "PaymentService", Version: "0.0.1"},
			{ID: "RefundService", Version: "1.0.0"},
		},
		Extensions: map[string]any{
			"owner":      "checkout-team",
			"deprecated": false,
		},
		Markdown: "# Payment\n\nAll things payments.\n",
	}

	data, err := MarshalDocument(resource)
	require.NoError(t, err)

	parsed, err := ParseDocument(data)
	require.NoError(t, err)
	require.Equal(t, resource, parsed)
}
