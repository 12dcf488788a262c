package render_test

import (
	"strings"
	"testing"

	"go-cvbuilder-backend/internal/domain"
	"go-cvbuilder-backend/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCV() domain.CV {
	return domain.CV{
		ID: "1",
		PersonalInfo: domain.PersonalInfo{
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john@example.com",
			Phone:     "1234567890",
			Address:   "123 Main St",
			Summary:   "Software Developer",
		},
		Experiences: []domain.Experience{
			{
				ID:          "exp1",
				Title:       "Software Engineer",
				Company:     "Tech Corp",
				Location:    "San Francisco",
				StartDate:   "2020-01-01",
				EndDate:     "2023-01-01",
				Current:     false,
				Description: "Developed web applications",
			},
		},
		Education: []domain.Education{
			{
				ID:          "edu1",
				Degree:      "Bachelor of Science",
				School:      "University",
				Location:    "City",
				StartDate:   "2016-09-01",
				EndDate:     "2020-06-01",
				Description: "Computer Science",
			},
		},
		Skills:    []domain.Skill{{ID: "skill1", Name: "Go", Level: domain.SkillExpert}},
		Languages: []domain.Language{{ID: "lang1", Name: "English", Level: domain.LanguageNative}},
		CreatedAt: domain.NowISO(),
		UpdatedAt: domain.NowISO(),
	}
}

func samplePortfolio() domain.Portfolio {
	return domain.Portfolio{
		ID:   "1",
		Name: "My Portfolio",
		Items: []domain.PortfolioItem{
			{
				ID:          "item1",
				Title:       "Project 1",
				Description: "A great project",
				Link:        "https://example.com",
				ImageURI:    "https://example.com/image.jpg",
				Tags:        []string{"Go", "Redis"},
			},
		},
	}
}

func TestCVHTMLModern(t *testing.T) {
	html, err := render.CVHTML(sampleCV(), render.CVModern)
	require.NoError(t, err)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "John Doe")
	assert.Contains(t, html, "john@example.com")
	assert.Contains(t, html, "Software Engineer")
	assert.Contains(t, html, "Tech Corp")
	assert.Contains(t, html, "Bachelor of Science")
	assert.Contains(t, html, "Go (expert)")
	assert.Contains(t, html, "English (native)")
	assert.Contains(t, html, "2020-01-01 - 2023-01-01")
	assert.NotContains(t, html, "2020-01-01 - Present")
}

func TestCVHTMLClassic(t *testing.T) {
	html, err := render.CVHTML(sampleCV(), render.CVClassic)
	require.NoError(t, err)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "John Doe")
	assert.Contains(t, html, "Professional Experience")
	assert.Contains(t, html, "text-align: center")
}

func TestCVHTMLCurrentRendersPresent(t *testing.T) {
	cv := sampleCV()
	cv.Experiences[0].Current = true
	cv.Experiences[0].EndDate = "2023-01-01" // stale value must be ignored

	for _, name := range []render.CVTemplate{render.CVModern, render.CVClassic} {
		html, err := render.CVHTML(cv, name)
		require.NoError(t, err)
		assert.Contains(t, html, "2020-01-01 - Present", "template %s", name)
		assert.NotContains(t, html, "2020-01-01 - 2023-01-01", "template %s", name)
	}
}

func TestCVHTMLEscapesUserInput(t *testing.T) {
	cv := sampleCV()
	cv.PersonalInfo.FirstName = "John<script>"
	cv.PersonalInfo.LastName = "Doe&Co"

	for _, name := range []render.CVTemplate{render.CVModern, render.CVClassic} {
		html, err := render.CVHTML(cv, name)
		require.NoError(t, err)
		assert.Contains(t, html, "&lt;script&gt;", "template %s", name)
		assert.Contains(t, html, "&amp;Co", "template %s", name)
		assert.NotContains(t, html, "<script>", "template %s", name)
	}
}

func TestCVHTMLOmitsEmptySections(t *testing.T) {
	cv := sampleCV()
	cv.Skills = nil
	cv.Languages = nil

	html, err := render.CVHTML(cv, render.CVModern)
	require.NoError(t, err)

	assert.NotContains(t, html, "Skills")
	assert.NotContains(t, html, "Languages")
	assert.Contains(t, html, "Experience")
}

func TestCVHTMLTemplateFallback(t *testing.T) {
	cv := sampleCV()

	modern, err := render.CVHTML(cv, render.CVModern)
	require.NoError(t, err)

	t.Run("empty name defaults to modern", func(t *testing.T) {
		html, err := render.CVHTML(cv, "")
		require.NoError(t, err)
		assert.Equal(t, modern, html)
	})

	t.Run("unknown name defaults to modern", func(t *testing.T) {
		html, err := render.CVHTML(cv, "brutalist")
		require.NoError(t, err)
		assert.Equal(t, modern, html)
	})
}

func TestKnownTemplates(t *testing.T) {
	assert.True(t, render.KnownCVTemplate("modern"))
	assert.True(t, render.KnownCVTemplate("classic"))
	assert.False(t, render.KnownCVTemplate("brutalist"))

	assert.True(t, render.KnownPortfolioTemplate("grid"))
	assert.True(t, render.KnownPortfolioTemplate("list"))
	assert.False(t, render.KnownPortfolioTemplate("carousel"))
}

func TestPortfolioHTMLGrid(t *testing.T) {
	html, err := render.PortfolioHTML(samplePortfolio(), render.PortfolioGrid)
	require.NoError(t, err)

	assert.Contains(t, html, "My Portfolio")
	assert.Contains(t, html, "Project 1")
	assert.Contains(t, html, "A great project")
	assert.Contains(t, html, `src="https://example.com/image.jpg"`)
	assert.Contains(t, html, `href="https://example.com"`)
	// tags render as badges in stored order
	first := strings.Index(html, `<span class="tag">Go</span>`)
	second := strings.Index(html, `<span class="tag">Redis</span>`)
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
}

func TestPortfolioHTMLNoImagePlaceholder(t *testing.T) {
	p := samplePortfolio()
	p.Items[0].ImageURI = ""

	for _, name := range []render.PortfolioTemplate{render.PortfolioGrid, render.PortfolioList} {
		html, err := render.PortfolioHTML(p, name)
		require.NoError(t, err)
		assert.Contains(t, html, "No Image", "template %s", name)
		assert.NotContains(t, html, "<img", "template %s", name)
	}
}

func TestPortfolioHTMLOmitsMissingLinkAndTags(t *testing.T) {
	p := samplePortfolio()
	p.Items[0].Link = ""
	p.Items[0].Tags = nil

	html, err := render.PortfolioHTML(p, render.PortfolioList)
	require.NoError(t, err)
	assert.NotContains(t, html, "View Project")
	assert.NotContains(t, html, `class="tag"`)
}

func TestPortfolioHTMLTemplateFallback(t *testing.T) {
	p := samplePortfolio()

	grid, err := render.PortfolioHTML(p, render.PortfolioGrid)
	require.NoError(t, err)

	html, err := render.PortfolioHTML(p, "")
	require.NoError(t, err)
	assert.Equal(t, grid, html)

	html, err = render.PortfolioHTML(p, "carousel")
	require.NoError(t, err)
	assert.Equal(t, grid, html)
}

func TestRenderingIsDeterministic(t *testing.T) {
	cv := sampleCV()
	a, err := render.CVHTML(cv, render.CVClassic)
	require.NoError(t, err)
	b, err := render.CVHTML(cv, render.CVClassic)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
