package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Veraticus/wastewise/internal/advisor"
	"github.com/Veraticus/wastewise/internal/common"
	"github.com/Veraticus/wastewise/internal/marketplace"
	"github.com/Veraticus/wastewise/internal/model"
	"github.com/Veraticus/wastewise/internal/service"
	"github.com/Veraticus/wastewise/internal/session"
	"github.com/Veraticus/wastewise/internal/storage"
	"github.com/gin-gonic/gin"
)

type sampleRequest struct {
	Name        string `json:"name" binding:"required"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type sellRequest struct {
	Buyer string `json:"buyer" binding:"required"`
}

func (s *Server) getCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profiles": s.catalog.Profiles()})
}

func (s *Server) createSession(c *gin.Context) {
	sess := s.registry.Create()
	c.JSON(http.StatusCreated, sess.Snapshot())
}

func (s *Server) getSession(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

func (s *Server) deleteSession(c *gin.Context) {
	if err := s.registry.Delete(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) provideSample(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}

	var req sampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid sample: " + err.Error()})
		return
	}
	if req.Size > advisor.MaxSampleSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "sample exceeds 10MB"})
		return
	}

	sample := advisor.Sample{Name: req.Name, ContentType: req.ContentType, Size: req.Size}
	if err := sess.ProvideSample(sample); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

func (s *Server) classify(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}

	result, err := sess.Classify(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) resetSession(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	sess.Reset()
	c.JSON(http.StatusOK, sess.Snapshot())
}

func (s *Server) createListing(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}

	var req marketplace.ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid listing: " + err.Error()})
		return
	}

	listing, err := s.market.ListFromResult(c.Request.Context(), sess.Result(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, listing)
}

func (s *Server) getListings(c *gin.Context) {
	filter := service.ListingFilter{
		Status:   model.ListingStatus(c.Query("status")),
		Material: c.Query("material"),
	}

	listings, err := s.market.Listings(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	if listings == nil {
		listings = []model.Listing{}
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

func (s *Server) sellListing(c *gin.Context) {
	var req sellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "buyer is required"})
		return
	}

	trade, err := s.market.Sell(c.Request.Context(), c.Param("id"), strings.TrimSpace(req.Buyer))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, trade)
}

func (s *Server) getTrades(c *gin.Context) {
	trades, err := s.market.Trades(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if trades == nil {
		trades = []model.Trade{}
	}
	c.JSON(http.StatusOK, gin.H{"trades": trades})
}

func (s *Server) lookup(c *gin.Context) (*session.Session, bool) {
	sess, err := s.registry.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return sess, true
}

// writeError maps domain errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	body := gin.H{"message": err.Error()}

	switch {
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrStaleResult):
		status = http.StatusConflict
		body["stale"] = true
	case errors.Is(err, session.ErrNoSample),
		errors.Is(err, session.ErrClassificationInFlight),
		errors.Is(err, session.ErrAlreadyClassified),
		errors.Is(err, storage.ErrListingNotOpen):
		status = http.StatusConflict
	case errors.Is(err, common.ErrClassificationUnavailable):
		status = http.StatusServiceUnavailable
		body["retryable"] = true
	case errors.Is(err, marketplace.ErrNotSellable),
		errors.Is(err, storage.ErrInvalidListing),
		errors.Is(err, storage.ErrInvalidStatus),
		errors.Is(err, storage.ErrEmptyString),
		errors.Is(err, common.ErrInvalidInput):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		common.LogError(err, "Request failed", common.Fields{"path": c.FullPath()})
	}
	c.JSON(status, body)
}
