package extract

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-parser/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertifications_ThreePartPattern(t *testing.T) {
	content := strings.Join([]string{
		"AWS Solutions Architect | Amazon Web Services | 2022",
		"CKA | Cloud Native Computing Foundation | 2021",
	}, "\n")

	got := Certifications(content, vocab.Default())
	require.Len(t, got, 2)

	assert.Equal(t, "AWS Solutions Architect", got[0].Name)
	assert.Equal(t, "Amazon Web Services", got[0].Issuer)
	assert.Equal(t, "2022", got[0].Year)

	assert.Equal(t, "CKA", got[1].Name)
	assert.Equal(t, "Cloud Native Computing Foundation", got[1].Issuer)
}

func TestCertifications_ThreePartYearNormalized(t *testing.T) {
	got := Certifications("AWS Certified Developer | Amazon | June 2020", vocab.Default())
	require.Len(t, got, 1)

	// The year is pulled out of the date field.
	assert.Equal(t, "AWS Certified Developer", got[0].Name)
	assert.Equal(t, "Amazon", got[0].Issuer)
	assert.Equal(t, "2020", got[0].Year)
}

func TestCertifications_ThreePartNoYearKeepsRawField(t *testing.T) {
	got := Certifications("CKA | CNCF | expires soon", vocab.Default())
	require.Len(t, got, 1)

	assert.Equal(t, "CKA", got[0].Name)
	assert.Equal(t, "CNCF", got[0].Issuer)
	assert.Equal(t, "expires soon", got[0].Year)
}

func TestCertifications_TwoPartPattern(t *testing.T) {
	got := Certifications("Professional Scrum Master, 2020", vocab.Default())
	require.Len(t, got, 1)

	assert.Equal(t, "Professional Scrum Master", got[0].Name)
	assert.Equal(t, "2020", got[0].Year)
	assert.Empty(t, got[0].Issuer)
}

func TestCertifications_SingleFieldFallback(t *testing.T) {
	got := Certifications("Google Cloud Professional Data Engineer", vocab.Default())
	require.Len(t, got, 1)

	assert.Equal(t, "Google Cloud Professional Data Engineer", got[0].Name)
	assert.Empty(t, got[0].Issuer)
	assert.Empty(t, got[0].Year)
}

func TestCertifications_BulletMarkersStripped(t *testing.T) {
	got := Certifications("- AWS Solutions Architect | Amazon | 2022", vocab.Default())
	require.Len(t, got, 1)
	assert.Equal(t, "AWS Solutions Architect", got[0].Name)
}

func TestCertifications_EmptyContent(t *testing.T) {
	assert.Empty(t, Certifications("", vocab.Default()))
}
