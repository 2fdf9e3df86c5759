package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	qterrors "github.com/toyz/quicktest/internal/errors"
	"github.com/toyz/quicktest/internal/models"
	"github.com/toyz/quicktest/internal/paths"
	"github.com/toyz/quicktest/internal/utils"
)

type ScaffoldRequest struct {
	SourcePath string `json:"source_path"`
	TargetPath string `json:"target_path"`
	Kind       string `json:"kind"`
}

type ScaffoldResponse struct {
	Kind       models.ScaffoldKind `json:"kind"`
	TargetPath string              `json:"target_path"`
	Content    string              `json:"content"`
}

type MapRequest struct {
	Path    string `json:"path"`
	BaseDir string `json:"base_dir"`
	Kind    string `json:"kind"`
}

type MapResponse struct {
	TargetPath string `json:"target_path"`
}

type InspectRequest struct {
	SourcePath string `json:"source_path"`
	TargetPath string `json:"target_path"`
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) scaffold(c echo.Context) error {
	var req ScaffoldRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest("invalid request body")
	}

	content, err := s.service.Generate(req.SourcePath, req.TargetPath, req.Kind)
	if err != nil {
		return err
	}

	kind, _ := models.ParseScaffoldKind(req.Kind)
	return c.JSON(http.StatusOK, ScaffoldResponse{
		Kind:       kind,
		TargetPath: req.TargetPath,
		Content:    content,
	})
}

func (s *Server) mapPath(c echo.Context) error {
	var req MapRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest("invalid request body")
	}

	arguments := []struct{ name, value string }{
		{"path", req.Path},
		{"base_dir", req.BaseDir},
		{"kind", req.Kind},
	}
	for _, arg := range arguments {
		if err := utils.NotEmpty(arg.name)(arg.value); err != nil {
			return qterrors.PreconditionError(arg.name).WithCause(err)
		}
	}

	kind, ok := models.ParseScaffoldKind(req.Kind)
	if !ok {
		return qterrors.UnknownKindError(req.Kind, kindNames())
	}

	target, ok := paths.Map(req.Path, req.BaseDir, kind.PathSuffix())
	if !ok {
		return ErrNotFound("path is not inside a project folder under base_dir")
	}
	return c.JSON(http.StatusOK, MapResponse{TargetPath: target})
}

func (s *Server) inspect(c echo.Context) error {
	var req InspectRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest("invalid request body")
	}

	ctx, err := s.service.Inspect(req.SourcePath, req.TargetPath)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ctx)
}

func kindNames() []string {
	names := make([]string, 0, len(models.AllScaffoldKinds))
	for _, kind := range models.AllScaffoldKinds {
		names = append(names, string(kind))
	}
	return names
}
