package controller

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/johnzhangfit/verttracker/internal/api/middleware"
	"github.com/johnzhangfit/verttracker/internal/api/response"
	"github.com/johnzhangfit/verttracker/internal/apperrors"
	"github.com/johnzhangfit/verttracker/internal/jump"
	"github.com/johnzhangfit/verttracker/internal/model"
	"github.com/johnzhangfit/verttracker/internal/plot"
	"github.com/johnzhangfit/verttracker/internal/service"
	"github.com/johnzhangfit/verttracker/internal/units"
)

// dayFormat renders a local calendar day, e.g. "Sat 30 Aug 2025".
const dayFormat = "Mon 02 Jan 2006"

// JumpController handles everything behind the auth middleware.
type JumpController struct {
	jumpService *service.JumpService
}

func NewJumpController(jumpService *service.JumpService) *JumpController {
	return &JumpController{jumpService: jumpService}
}

type RecordJumpRequest struct {
	Variant    string   `json:"variant"`
	HangTime   *float64 `json:"hang-time"`
	BodyWeight *float64 `json:"body-weight"`
	Note       *string  `json:"note"`
}

// JumpRow is one element of the jumps listing. Weight and note are absent on
// averaged rows.
type JumpRow struct {
	Date    string   `json:"date"`
	Height  float64  `json:"height"`
	Variant string   `json:"variant"`
	Weight  *float64 `json:"weight,omitempty"`
	Note    *string  `json:"note,omitempty"`
}

// RecordJump stores one measured jump.
// @Summary      Record a jump
// @Description  Derives jump height from hang time and stores the record in SI units.
// @Tags         jumps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  RecordJumpRequest  true  "measurement"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /record-jump [post]
func (ctrl *JumpController) RecordJump(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var req RecordJumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.Validation("request body must be valid JSON"))
		return
	}

	in := service.RecordInput{
		Variant: req.Variant,
		Note:    req.Note,
	}
	if req.HangTime != nil {
		in.HangTime = *req.HangTime
	}
	if req.BodyWeight != nil {
		in.BodyWeight = *req.BodyWeight
	}

	if err := ctrl.jumpService.Record(c.Request.Context(), userID, in); err != nil {
		if !apperrors.IsValidation(err) {
			slog.Error("record-jump failed", "userID", userID, "err", err)
		}
		response.Error(c, err)
		return
	}

	response.Msg(c, "jump recorded successfully")
}

// ListJumps returns the filtered, aggregated, converted record listing.
// @Summary      List jumps
// @Description  Filters by variant, optionally aggregates per local calendar day, converts units and sorts.
// @Tags         jumps
// @Produce      json
// @Security     BearerAuth
// @Param        variant      query  string  false  "MAX or CMJ"
// @Param        aggregation  query  string  false  "avg or max"
// @Param        height-unit  query  string  false  "m, cm or in"  default(m)
// @Param        weight-unit  query  string  false  "kg or lbs"    default(kg)
// @Param        utc-offset   query  int     false  "hours, -12..14"  default(0)
// @Param        order-by     query  string  false  "date, weight or height"  default(date)
// @Success      200  {array}   JumpRow
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /jumps [get]
func (ctrl *JumpController) ListJumps(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	q := service.JumpsQuery{
		Variant:     c.Query("variant"),
		Aggregation: c.Query("aggregation"),
		HeightUnit:  c.DefaultQuery("height-unit", units.HeightMeters),
		WeightUnit:  c.DefaultQuery("weight-unit", units.WeightKilograms),
		UTCOffset:   c.DefaultQuery("utc-offset", "0"),
		OrderBy:     c.DefaultQuery("order-by", jump.OrderByDate),
	}

	entries, err := ctrl.jumpService.Query(c.Request.Context(), userID, q)
	if err != nil {
		if !apperrors.IsValidation(err) {
			slog.Error("jumps query failed", "userID", userID, "err", err)
		}
		response.Error(c, err)
		return
	}

	averaged := q.Aggregation == jump.AggregationAvg
	rows := make([]JumpRow, 0, len(entries))
	for _, e := range entries {
		row := JumpRow{
			Date:    e.Day.Format(dayFormat),
			Height:  e.Height,
			Variant: e.Variant,
		}
		if !averaged {
			weight := e.Weight
			row.Weight = &weight
			row.Note = e.Note
		}
		rows = append(rows, row)
	}

	response.OK(c, rows)
}

// Plot renders the jump-height progress chart.
// @Summary      Plot progress
// @Description  Renders a PNG of aggregated jump height over the trailing window of years.
// @Tags         jumps
// @Produce      png
// @Security     BearerAuth
// @Param        years        query  int     false  "trailing window"  default(1)
// @Param        variant      query  string  false  "MAX or CMJ"       default(MAX)
// @Param        aggregation  query  string  false  "avg or max"       default(max)
// @Param        height-unit  query  string  false  "m, cm or in"      default(m)
// @Param        utc-offset   query  int     false  "hours, -12..14"   default(0)
// @Success      200  {string}  binary
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /plot [get]
func (ctrl *JumpController) Plot(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	q := service.PlotQuery{
		Years:       c.DefaultQuery("years", "1"),
		Variant:     c.DefaultQuery("variant", model.VariantMax),
		Aggregation: c.DefaultQuery("aggregation", jump.AggregationMax),
		HeightUnit:  c.DefaultQuery("height-unit", units.HeightMeters),
		UTCOffset:   c.DefaultQuery("utc-offset", "0"),
	}

	series, err := ctrl.jumpService.PlotSeries(c.Request.Context(), userID, q)
	if err != nil {
		if !apperrors.IsValidation(err) {
			slog.Error("plot series failed", "userID", userID, "err", err)
		}
		response.Error(c, err)
		return
	}

	png, err := plot.Render(series, q.HeightUnit)
	if err != nil {
		slog.Error("plot render failed", "userID", userID, "err", err)
		response.Error(c, err)
		return
	}

	c.Data(200, "image/png", png)
}

type SummaryJump struct {
	Height float64 `json:"height"`
	Date   string  `json:"date"`
}

type SummaryImprovement struct {
	SixMonths        *float64 `json:"6-months"`
	TwelveMonths     *float64 `json:"12-months"`
	TwentyFourMonths *float64 `json:"24-months"`
}

type SummaryResponse struct {
	NumRecords  int                `json:"num-records"`
	NumDays     int                `json:"num-days"`
	HighestJump *SummaryJump       `json:"highest-jump"`
	LastJump    *SummaryJump       `json:"last-jump"`
	Improvement SummaryImprovement `json:"improvement"`
}

// Summary returns the user's progress overview.
// @Summary      Progress summary
// @Description  Record counts, best and latest jump, and height improvement over rolling 6/12/24-month windows.
// @Tags         jumps
// @Produce      json
// @Security     BearerAuth
// @Param        height-unit  query  string  false  "m, cm or in"  default(m)
// @Success      200  {object}  SummaryResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /summary [get]
func (ctrl *JumpController) Summary(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	heightUnit := c.DefaultQuery("height-unit", units.HeightMeters)

	summary, err := ctrl.jumpService.Summary(c.Request.Context(), userID, heightUnit)
	if err != nil {
		if !apperrors.IsValidation(err) {
			slog.Error("summary failed", "userID", userID, "err", err)
		}
		response.Error(c, err)
		return
	}

	resp := SummaryResponse{
		NumRecords: summary.NumRecords,
		NumDays:    summary.NumDays,
		Improvement: SummaryImprovement{
			SixMonths:        summary.Improvement6M,
			TwelveMonths:     summary.Improvement12M,
			TwentyFourMonths: summary.Improvement24M,
		},
	}
	if summary.Highest != nil {
		resp.HighestJump = &SummaryJump{
			Height: summary.Highest.Height,
			Date:   summary.Highest.Date.Format("2006-01-02"),
		}
	}
	if summary.Last != nil {
		resp.LastJump = &SummaryJump{
			Height: summary.Last.Height,
			Date:   summary.Last.Date.Format("2006-01-02"),
		}
	}

	response.OK(c, resp)
}
