// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Henry1228081dev/brand-biz/internal/core/media"
	"github.com/Henry1228081dev/brand-biz/internal/core/model"
	"github.com/Henry1228081dev/brand-biz/internal/core/services"
	"github.com/Henry1228081dev/brand-biz/internal/core/workflow"
)

func isStageError(err error) bool {
	var intelErr *services.IntelligenceError
	var critErr *services.CritiqueError
	var transportErr *services.TransportError
	return errors.As(err, &intelErr) || errors.As(err, &critErr) || errors.As(err, &transportErr)
}

// formBlob opens the named multipart file as a streaming Blob. The caller
// must close the returned file after the blob is consumed.
func formBlob(c *gin.Context, field string) (media.Blob, multipart.File, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return media.Blob{}, nil, err
	}
	file, err := fileHeader.Open()
	if err != nil {
		return media.Blob{}, nil, err
	}
	return media.NewBlob(file, fileHeader.Header.Get("Content-Type")), file, nil
}

// writeError maps pipeline errors to HTTP statuses: bad requests and
// unreadable uploads are the caller's fault, failed model stages are a bad
// gateway, anything else is internal.
func writeError(c *gin.Context, err error) {
	var validationErr *workflow.ValidationError
	var readErr *media.ReadError
	switch {
	case errors.As(err, &validationErr), errors.As(err, &readErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case isStageError(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// CritiqueRouter registers the two-stage critique endpoint.
func CritiqueRouter(r *gin.RouterGroup) {
	r.POST("/critique", func(c *gin.Context) {
		video, file, err := formBlob(c, "video")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "a video file is required"})
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				slog.Warn("failed to close uploaded file", "error", err)
			}
		}()

		brand := model.BrandConfig{
			Name:     c.PostForm("name"),
			Industry: c.PostForm("industry"),
			Platform: c.PostForm("platform"),
			DNA:      c.PostForm("dna"),
		}

		result, err := state.critiqueWorkflow.Run(c.Request.Context(), video, brand)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	})
}

// AnalysisRouter registers the single-stage inference endpoints.
func AnalysisRouter(r *gin.RouterGroup) {
	analyze := r.Group("/analyze")
	{
		analyze.POST("/image", func(c *gin.Context) {
			image, file, err := formBlob(c, "image")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "an image file is required"})
				return
			}
			defer file.Close()

			out, err := state.analysisService.AnalyzeImage(c.Request.Context(), image, c.PostForm("instruction"))
			if err != nil {
				writeError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"text": out})
		})

		analyze.POST("/video", func(c *gin.Context) {
			video, file, err := formBlob(c, "video")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "a video file is required"})
				return
			}
			defer file.Close()

			out, err := state.analysisService.AnalyzeVideo(c.Request.Context(), video, c.PostForm("instruction"))
			if err != nil {
				writeError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"text": out})
		})
	}

	r.POST("/transcribe", func(c *gin.Context) {
		audio, file, err := formBlob(c, "audio")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "an audio file is required"})
			return
		}
		defer file.Close()

		out, err := state.analysisService.Transcribe(c.Request.Context(), audio)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"text": out})
	})

	r.GET("/search", func(c *gin.Context) {
		query := c.Query("s")
		if len(query) == 0 {
			c.Status(http.StatusBadRequest)
			return
		}
		out, err := state.analysisService.GroundedSearch(c.Request.Context(), query)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	})

	r.POST("/query", func(c *gin.Context) {
		var req struct {
			Prompt string `json:"prompt" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		out, err := state.analysisService.ComplexQuery(c.Request.Context(), req.Prompt)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"text": out})
	})
}
