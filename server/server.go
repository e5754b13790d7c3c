// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

// Package server exposes coordinate parsing, pair extraction and batch
// conversion over an HTTP API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nprieto/coordconv/dms"
	"github.com/nprieto/coordconv/store"
)

type Server struct {
	repo store.ConversionRepository
}

// NewServer creates a Server. repo may be nil, in which case conversion
// batches are not persisted.
func NewServer(repo store.ConversionRepository) *Server {
	return &Server{repo: repo}
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/api/parse", s.parseCoordinate)
	r.GET("/api/extract", s.extractPair)
	r.POST("/api/convert", s.convertRows)

	return r
}

func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

type parseResponse struct {
	Input   string  `json:"input"`
	Decimal float64 `json:"decimal"`
	DMS     string  `json:"dms"`
}

func (s *Server) parseCoordinate(ctx *gin.Context) {
	value := ctx.Query("value")
	if value == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "value query parameter is required"})

		return
	}

	axis := dms.Latitude
	if a := ctx.Query("axis"); a == "lon" || a == "lng" {
		axis = dms.Longitude
	}

	dd, err := dms.ParseCoordinate(value)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

		return
	}

	ctx.JSON(http.StatusOK, parseResponse{
		Input:   value,
		Decimal: dd,
		DMS:     dms.Format(dd, axis),
	})
}

type extractResponse struct {
	Found bool   `json:"found"`
	Lat   string `json:"lat,omitempty"`
	Lon   string `json:"lng,omitempty"`
}

func (s *Server) extractPair(ctx *gin.Context) {
	line := ctx.Query("line")
	if line == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "line query parameter is required"})

		return
	}

	lat, lon, ok := dms.ExtractPair(line)

	ctx.JSON(http.StatusOK, extractResponse{Found: ok, Lat: lat, Lon: lon})
}

type convertRequest struct {
	Rows      []dms.Row `json:"rows" binding:"required"`
	LatColumn string    `json:"lat_column"`
	LonColumn string    `json:"lon_column"`
	Source    string    `json:"source"`
	MaxProcs  int       `json:"max_procs"`
}

type rowErrorDTO struct {
	Row         int    `json:"row"`
	OriginalLat string `json:"original_lat"`
	OriginalLon string `json:"original_lng"`
	Reason      string `json:"reason"`
}

type convertResponse struct {
	Conversions []dms.Conversion `json:"conversions"`
	Errors      []rowErrorDTO    `json:"errors"`
}

func (s *Server) convertRows(ctx *gin.Context) {
	var req convertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if req.LatColumn == "" {
		req.LatColumn = "Latitude"
	}

	if req.LonColumn == "" {
		req.LonColumn = "Longitude"
	}

	var conversions []dms.Conversion

	var failures []*dms.RowError

	if req.MaxProcs > 1 {
		conversions, failures = dms.ConvertRowsParallel(req.Rows, req.LatColumn, req.LonColumn, req.MaxProcs)
	} else {
		conversions, failures = dms.ConvertRows(req.Rows, req.LatColumn, req.LonColumn)
	}

	if s.repo != nil && req.Source != "" {
		if err := s.repo.SaveBatch(req.Source, conversions, failures); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

			return
		}
	}

	resp := convertResponse{
		Conversions: conversions,
		Errors:      make([]rowErrorDTO, 0, len(failures)),
	}

	for _, f := range failures {
		resp.Errors = append(resp.Errors, rowErrorDTO{
			Row:         f.Row,
			OriginalLat: f.OriginalLat,
			OriginalLon: f.OriginalLon,
			Reason:      f.Reason.Error(),
		})
	}

	ctx.JSON(http.StatusOK, resp)
}
