package rest

import (
	_ "embed"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/hireline/screener-backend/internal/application"
	"github.com/hireline/screener-backend/internal/application/dto"
)

//go:embed dashboard.html
var dashboardHTML string

// Server exposes the screening dashboard and its JSON API.
type Server struct {
	queries    *application.Queries
	csvPath    string
	resumeRoot string
	pathsFile  string
}

func NewServer(queries *application.Queries, csvPath, resumeRoot, pathsFile string) *Server {
	return &Server{
		queries:    queries,
		csvPath:    csvPath,
		resumeRoot: resumeRoot,
		pathsFile:  pathsFile,
	}
}

func RegisterHandlers(app *fiber.App, s *Server) {
	app.Get("/", s.Dashboard)
	app.Get("/dashboard", s.Dashboard)
	app.Get("/api/candidates", s.ListCandidates)
	app.Get("/api/candidates/top", s.TopCandidates)
	app.Get("/api/stats", s.Stats)
	app.Get("/candidates.csv", s.CandidatesCSV)
	app.Get("/resume_paths.json", s.ResumePaths)
	app.Static("/resumes", s.resumeRoot)
}

func (s *Server) Dashboard(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(dashboardHTML)
}

func (s *Server) ListCandidates(c *fiber.Ctx) error {
	filter := dto.CandidateFilter{
		MinScore:          c.QueryFloat("min_score"),
		JobLevel:          c.Query("job_level"),
		MaxUniversityTier: c.QueryInt("max_university_tier"),
		MaxCompanyTier:    c.QueryInt("max_company_tier"),
		Country:           c.Query("country"),
		MinExperience:     c.QueryFloat("min_experience"),
		Search:            c.Query("search"),
	}
	order := dto.CandidateSort{
		Key:       c.Query("sort", "overall_score"),
		Ascending: c.Query("order") == "asc",
	}

	recs, err := s.queries.List.Query(c.Context(), filter, order)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if recs == nil {
		recs = []dto.CandidateRecord{}
	}
	return c.JSON(recs)
}

func (s *Server) TopCandidates(c *fiber.Ctx) error {
	n := c.QueryInt("n", 5)
	recs, err := s.queries.Top.Query(c.Context(), n)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if recs == nil {
		recs = []dto.CandidateRecord{}
	}
	return c.JSON(recs)
}

func (s *Server) Stats(c *fiber.Ctx) error {
	report, err := s.queries.Verify.Query(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(report)
}

func (s *Server) CandidatesCSV(c *fiber.Ctx) error {
	if _, err := os.Stat(s.csvPath); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "candidates CSV not found, run extract first"})
	}
	return c.SendFile(s.csvPath)
}

func (s *Server) ResumePaths(c *fiber.Ctx) error {
	if _, err := os.Stat(s.pathsFile); err != nil {
		return c.JSON(fiber.Map{})
	}
	return c.SendFile(s.pathsFile)
}
