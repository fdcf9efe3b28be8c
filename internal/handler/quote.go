package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/freight-backend/internal/model"
	"github.com/cargolink/freight-backend/internal/queue"
	"github.com/cargolink/freight-backend/internal/repository"
	queue_publisher "github.com/cargolink/freight-backend/internal/service"
)

const defaultQuoteLifetime = 7 * 24 * time.Hour

// QuoteHandler serves the marketplace surface: cargo owners post and manage
// quotes, transporters bid, and an owner's acceptance turns the winning bid
// into a shipment.
type QuoteHandler struct {
	Quotes    *repository.QuoteRepo
	Bids      *repository.BidRepo
	Shipments *repository.ShipmentRepo
	Users     *repository.UserRepo
}

func NewQuoteHandler(q *repository.QuoteRepo, b *repository.BidRepo, s *repository.ShipmentRepo, u *repository.UserRepo) *QuoteHandler {
	return &QuoteHandler{Quotes: q, Bids: b, Shipments: s, Users: u}
}

// ----- DTOs -----

type createQuoteReq struct {
	Cargo               string     `json:"cargo"`
	CargoType           *string    `json:"cargo_type"`
	CargoDescription    *string    `json:"cargo_description"`
	FromLocation        string     `json:"from_location"`
	FromAddress         *string    `json:"from_address"`
	ToLocation          string     `json:"to_location"`
	ToAddress           *string    `json:"to_address"`
	Weight              float64    `json:"weight"`
	Distance            *float64   `json:"distance"`
	Dimensions          *string    `json:"dimensions"`
	EstimatedValue      *float64   `json:"estimated_value"`
	InsuranceRequired   bool       `json:"insurance_required"`
	SpecialInstructions *string    `json:"special_instructions"`
	PickupDate          *time.Time `json:"pickup_date"`
	DeliveryDate        *time.Time `json:"delivery_date"`
	ExpiresAt           *time.Time `json:"expires_at"`
}

type createBidReq struct {
	Amount        float64 `json:"amount"`
	EstimatedDays int     `json:"estimated_days"`
	Notes         *string `json:"notes"`
}

type quoteResp struct {
	ID                  uint64            `json:"id"`
	CargoOwnerID        uint64            `json:"cargo_owner_id"`
	Cargo               string            `json:"cargo"`
	CargoType           *string           `json:"cargo_type,omitempty"`
	CargoDescription    *string           `json:"cargo_description,omitempty"`
	FromLocation        string            `json:"from_location"`
	FromAddress         *string           `json:"from_address,omitempty"`
	ToLocation          string            `json:"to_location"`
	ToAddress           *string           `json:"to_address,omitempty"`
	Weight              float64           `json:"weight"`
	Distance            *float64          `json:"distance,omitempty"`
	Dimensions          *string           `json:"dimensions,omitempty"`
	EstimatedValue      *float64          `json:"estimated_value,omitempty"`
	InsuranceRequired   bool              `json:"insurance_required"`
	SpecialInstructions *string           `json:"special_instructions,omitempty"`
	PickupDate          *time.Time        `json:"pickup_date,omitempty"`
	DeliveryDate        *time.Time        `json:"delivery_date,omitempty"`
	Status              model.QuoteStatus `json:"status"`
	ExpiresAt           time.Time         `json:"expires_at"`
	CreatedAt           time.Time         `json:"created_at"`
	Bids                []bidResp         `json:"bids,omitempty"`
}

type bidResp struct {
	ID                uint64    `json:"id"`
	QuoteID           uint64    `json:"quote_id"`
	TransporterID     uint64    `json:"transporter_id"`
	Amount            float64   `json:"amount"`
	TransporterPayout float64   `json:"transporter_payout"`
	EstimatedDays     int       `json:"estimated_days"`
	Notes             *string   `json:"notes,omitempty"`
	IsAccepted        bool      `json:"is_accepted"`
	CreatedAt         time.Time `json:"created_at"`
}

type shipmentResp struct {
	ID               uint64               `json:"id"`
	QuoteID          uint64               `json:"quote_id"`
	Cargo            string               `json:"cargo"`
	CargoDescription *string              `json:"cargo_description,omitempty"`
	FromLocation     string               `json:"from_location"`
	FromAddress      *string              `json:"from_address,omitempty"`
	ToLocation       string               `json:"to_location"`
	ToAddress        *string              `json:"to_address,omitempty"`
	Weight           float64              `json:"weight"`
	Distance         *float64             `json:"distance,omitempty"`
	Dimensions       *string              `json:"dimensions,omitempty"`
	Amount           float64              `json:"amount"`
	ETA              time.Time            `json:"eta"`
	PickupDate       *time.Time           `json:"pickup_date,omitempty"`
	Status           model.ShipmentStatus `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
	CargoOwner       *model.UserRef       `json:"cargo_owner,omitempty"`
	Transporter      *model.UserRef       `json:"transporter,omitempty"`
}

// toQuoteResp projects a quote for the wire. Status is the effective one:
// an ACTIVE quote past its expiry reads as EXPIRED even though the stored
// row still says ACTIVE.
func toQuoteResp(q model.Quote, now time.Time) quoteResp {
	return quoteResp{
		ID:                  q.ID,
		CargoOwnerID:        q.CargoOwnerID,
		Cargo:               q.Cargo,
		CargoType:           q.CargoType,
		CargoDescription:    q.CargoDescription,
		FromLocation:        q.FromLocation,
		FromAddress:         q.FromAddress,
		ToLocation:          q.ToLocation,
		ToAddress:           q.ToAddress,
		Weight:              q.Weight,
		Distance:            q.Distance,
		Dimensions:          q.Dimensions,
		EstimatedValue:      q.EstimatedValue,
		InsuranceRequired:   q.InsuranceRequired,
		SpecialInstructions: q.SpecialInstructions,
		PickupDate:          q.PickupDate,
		DeliveryDate:        q.DeliveryDate,
		Status:              q.StatusAt(now),
		ExpiresAt:           q.ExpiresAt,
		CreatedAt:           q.CreatedAt,
	}
}

func toBidResp(b model.Bid) bidResp {
	return bidResp{
		ID:                b.ID,
		QuoteID:           b.QuoteID,
		TransporterID:     b.TransporterID,
		Amount:            b.Amount,
		TransporterPayout: b.Payout(),
		EstimatedDays:     b.EstimatedDays,
		Notes:             b.Notes,
		IsAccepted:        b.IsAccepted,
		CreatedAt:         b.CreatedAt,
	}
}

func toShipmentResp(s model.Shipment) shipmentResp {
	return shipmentResp{
		ID:               s.ID,
		QuoteID:          s.QuoteID,
		Cargo:            s.Cargo,
		CargoDescription: s.CargoDescription,
		FromLocation:     s.FromLocation,
		FromAddress:      s.FromAddress,
		ToLocation:       s.ToLocation,
		ToAddress:        s.ToAddress,
		Weight:           s.Weight,
		Distance:         s.Distance,
		Dimensions:       s.Dimensions,
		Amount:           s.Amount,
		ETA:              s.ETA,
		PickupDate:       s.PickupDate,
		Status:           s.Status,
		CreatedAt:        s.CreatedAt,
	}
}

func paramID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// CreateQuote posts a new transport request. Cargo-owner only (enforced by
// route middleware). A missing expiry defaults to seven days out; a missing
// distance stays NULL rather than being stored as zero.
func (h *QuoteHandler) CreateQuote(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createQuoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Cargo == "" || req.FromLocation == "" || req.ToLocation == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cargo, from_location and to_location are required"})
	}
	if req.Weight <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "weight must be positive"})
	}

	now := time.Now().UTC()
	expires := now.Add(defaultQuoteLifetime)
	if req.ExpiresAt != nil {
		if !req.ExpiresAt.After(now) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "expires_at must be in the future"})
		}
		expires = req.ExpiresAt.UTC()
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	q := model.Quote{
		CargoOwnerID:        ownerID,
		Cargo:               req.Cargo,
		CargoType:           req.CargoType,
		CargoDescription:    req.CargoDescription,
		FromLocation:        req.FromLocation,
		FromAddress:         req.FromAddress,
		ToLocation:          req.ToLocation,
		ToAddress:           req.ToAddress,
		Weight:              req.Weight,
		Distance:            req.Distance,
		Dimensions:          req.Dimensions,
		EstimatedValue:      req.EstimatedValue,
		InsuranceRequired:   req.InsuranceRequired,
		SpecialInstructions: req.SpecialInstructions,
		PickupDate:          req.PickupDate,
		DeliveryDate:        req.DeliveryDate,
		Status:              model.QuoteActive,
		ExpiresAt:           expires,
	}
	if err := h.Quotes.Create(ctx, &q); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create quote failed"})
	}
	return c.JSON(http.StatusCreated, toQuoteResp(q, now))
}

// ListQuotes is role-sensitive: cargo owners get their own quotes (any
// status, with bids), transporters and admins get the open board of ACTIVE
// unexpired quotes.
func (h *QuoteHandler) ListQuotes(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	role, ok := getRole(c)
	if !ok {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	now := time.Now().UTC()

	var quotes []model.Quote
	switch role {
	case model.RoleCargoOwner:
		quotes, err = h.Quotes.ListByOwner(ctx, userID)
	case model.RoleTransporter, model.RoleAdmin:
		quotes, err = h.Quotes.ListOpen(ctx)
	default:
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list quotes failed"})
	}

	out := make([]quoteResp, 0, len(quotes))
	for _, q := range quotes {
		resp := toQuoteResp(q, now)
		if role == model.RoleCargoOwner {
			bids, err := h.Bids.ListByQuote(ctx, q.ID)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list quotes failed"})
			}
			for _, b := range bids {
				resp.Bids = append(resp.Bids, toBidResp(b))
			}
		}
		out = append(out, resp)
	}
	return c.JSON(http.StatusOK, echo.Map{"quotes": out})
}

// ActiveQuotes returns the caller's ACTIVE unexpired quotes, soonest expiry
// first, capped at ten. Cargo-owner only.
func (h *QuoteHandler) ActiveQuotes(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	quotes, err := h.Quotes.ListActiveByOwner(ctx, ownerID, 10)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list quotes failed"})
	}
	now := time.Now().UTC()
	out := make([]quoteResp, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, toQuoteResp(q, now))
	}
	return c.JSON(http.StatusOK, echo.Map{"quotes": out})
}

// GetQuote fetches a single quote with its bids. Owners may read their own
// quotes in any state; transporters and admins may read any quote so they
// can inspect a board entry before bidding.
func (h *QuoteHandler) GetQuote(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	role, ok := getRole(c)
	if !ok {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid quote id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	q, err := h.Quotes.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrQuoteNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "quote not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if role == model.RoleCargoOwner && q.CargoOwnerID != userID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	resp := toQuoteResp(q, time.Now().UTC())
	bids, err := h.Bids.ListByQuote(ctx, q.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	for _, b := range bids {
		resp.Bids = append(resp.Bids, toBidResp(b))
	}
	return c.JSON(http.StatusOK, resp)
}

// CancelQuote transitions the caller's ACTIVE quote to CANCELLED. Quotes in
// any terminal state stay untouched and report a conflict.
func (h *QuoteHandler) CancelQuote(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid quote id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	switch err := h.Quotes.Cancel(ctx, id, ownerID); err {
	case nil:
		return c.JSON(http.StatusOK, echo.Map{"message": "quote cancelled"})
	case repository.ErrQuoteNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "quote not found"})
	case repository.ErrForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case repository.ErrConflict:
		return c.JSON(http.StatusConflict, echo.Map{"error": "quote is not active"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}
}

// GetQuoteShipment returns the shipment materialized from the caller's
// quote, if acceptance has happened. Owner only.
func (h *QuoteHandler) GetQuoteShipment(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid quote id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	q, err := h.Quotes.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrQuoteNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "quote not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if q.CargoOwnerID != ownerID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	s, err := h.Shipments.GetByQuote(ctx, id)
	if err != nil {
		if err == repository.ErrShipmentNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no shipment for this quote"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toShipmentResp(s))
}

// CreateBid places a transporter's offer on a quote. A quote must be ACTIVE
// and unexpired to take bids, and each transporter holds at most one bid
// per quote. Transporter only.
func (h *QuoteHandler) CreateBid(c echo.Context) error {
	transporterID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	quoteID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid quote id"})
	}
	var req createBidReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be positive"})
	}
	if req.EstimatedDays <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "estimated_days must be positive"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	q, err := h.Quotes.GetByID(ctx, quoteID)
	if err != nil {
		if err == repository.ErrQuoteNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "quote not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if q.Status != model.QuoteActive {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quote is no longer active"})
	}
	if time.Now().UTC().After(q.ExpiresAt) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quote has expired"})
	}

	b := model.Bid{
		QuoteID:       quoteID,
		TransporterID: transporterID,
		Amount:        req.Amount,
		EstimatedDays: req.EstimatedDays,
		Notes:         req.Notes,
	}
	if err := h.Bids.Create(ctx, &b); err != nil {
		if err == repository.ErrDuplicateBid {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "you have already placed a bid on this quote"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create bid failed"})
	}
	return c.JSON(http.StatusCreated, toBidResp(b))
}

// AcceptBid is the atomic unit that turns a bid into a shipment. Everything
// runs in one SQL transaction with a row lock on the quote: the bid is
// flagged accepted, the quote moves to ACCEPTED and the shipment snapshot
// is inserted. The UNIQUE constraint on shipments.quote_id backstops any
// interleaving the lock does not cover. Cargo-owner only.
func (h *QuoteHandler) AcceptBid(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	quoteID, err := paramID(c, "quoteId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid quote id"})
	}
	bidID, err := paramID(c, "bidId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid bid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()
	now := time.Now().UTC()

	tx, err := h.Quotes.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "begin transaction failed"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	q, err := h.Quotes.GetForUpdateTx(ctx, tx, quoteID)
	if err != nil {
		if err == repository.ErrQuoteNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "quote not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if q.CargoOwnerID != ownerID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "only the quote owner can accept bids"})
	}

	exists, err := h.Shipments.ExistsForQuoteTx(ctx, tx, quoteID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if exists {
		return c.JSON(http.StatusConflict, echo.Map{"error": "a shipment already exists for this quote"})
	}
	if q.StatusAt(now) != model.QuoteActive {
		return c.JSON(http.StatusConflict, echo.Map{"error": "quote is not active"})
	}

	b, err := h.Bids.GetByQuoteTx(ctx, tx, quoteID, bidID)
	if err != nil {
		if err == repository.ErrBidNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bid not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if b.IsAccepted {
		return c.JSON(http.StatusConflict, echo.Map{"error": "bid already accepted"})
	}

	if err := h.Bids.MarkAcceptedTx(ctx, tx, b.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "accept failed"})
	}
	if err := h.Quotes.MarkAcceptedTx(ctx, tx, q.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "accept failed"})
	}

	// Snapshot the quote into the shipment; quotes can expire or be edited
	// independently of an in-flight shipment.
	eta := now.Add(time.Duration(b.EstimatedDays) * 24 * time.Hour)
	if q.DeliveryDate != nil {
		eta = *q.DeliveryDate
	}
	s := model.Shipment{
		QuoteID:          q.ID,
		CargoOwnerID:     q.CargoOwnerID,
		TransporterID:    b.TransporterID,
		Cargo:            q.Cargo,
		CargoDescription: q.CargoDescription,
		FromLocation:     q.FromLocation,
		FromAddress:      q.FromAddress,
		ToLocation:       q.ToLocation,
		ToAddress:        q.ToAddress,
		Weight:           q.Weight,
		Distance:         q.Distance,
		Dimensions:       q.Dimensions,
		Amount:           b.Amount,
		ETA:              eta,
		PickupDate:       q.PickupDate,
		Status:           model.ShipmentPendingPickup,
	}
	if err := h.Shipments.CreateTx(ctx, tx, &s); err != nil {
		if err == repository.ErrShipmentExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "a shipment already exists for this quote"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "accept failed"})
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "commit failed"})
	}
	committed = true
	s.CreatedAt = now

	resp := toShipmentResp(s)
	if owner, err := h.Users.GetByID(ctx, q.CargoOwnerID); err == nil {
		ref := owner.Ref()
		resp.CargoOwner = &ref
	}
	if tr, err := h.Users.GetByID(ctx, b.TransporterID); err == nil {
		ref := tr.Ref()
		resp.Transporter = &ref
	}

	// Best effort: the acceptance is committed, a broker outage only costs
	// the notification.
	go func(ev queue.ShipmentCreatedEvent) {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		if err := queue_publisher.PublishShipmentCreated(pubCtx, ev); err != nil {
			log.Printf("accept-bid: publish shipment.created failed: %v", err)
		}
	}(queue.ShipmentCreatedEvent{
		ShipmentID:    s.ID,
		QuoteID:       q.ID,
		BidID:         b.ID,
		CargoOwnerID:  q.CargoOwnerID,
		TransporterID: b.TransporterID,
		Cargo:         q.Cargo,
		FromLocation:  q.FromLocation,
		ToLocation:    q.ToLocation,
		WeightKg:      q.Weight,
		Amount:        b.Amount,
		Payout:        b.Payout(),
		ETA:           eta.Format(time.RFC3339),
		CreatedAt:     now.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, resp)
}
