package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/huellitas-app/petcare-api/internal/cache"
	"github.com/huellitas-app/petcare-api/internal/models"
	"github.com/huellitas-app/petcare-api/internal/timezone"
)

// Tarifa plana por servicio; el dashboard estima ingresos con ella.
const pricePerService = 900

const statsCacheKey = "stats:overview"
const statsCacheTTL = 5 * time.Minute

// ======================================================
// HANDLER
// ======================================================

type StatsHandler struct {
	db    *gorm.DB
	cache *cache.Client
}

func NewStatsHandler(db *gorm.DB, cacheClient *cache.Client) *StatsHandler {
	return &StatsHandler{db: db, cache: cacheClient}
}

type StatsOverview struct {
	TotalPets       int64                       `json:"total_pets"`
	TotalProducts   int64                       `json:"total_products"`
	MonthlyEarnings float64                     `json:"monthly_earnings"`
	PetsByTypeSex   map[string]map[string]int64 `json:"pets_by_type_and_sex"`
	ClientsByMonth  []int                       `json:"clients_by_month"`
}

func (h *StatsHandler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok := h.cache.Get(ctx, statsCacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	}

	overview, err := h.buildOverview()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_build_stats"})
		return
	}

	if payload, err := json.Marshal(overview); err == nil {
		h.cache.Set(ctx, statsCacheKey, string(payload), statsCacheTTL)
	}

	c.JSON(http.StatusOK, overview)
}

// ======================================================
// AGREGACIÓN
// ======================================================

func (h *StatsHandler) buildOverview() (*StatsOverview, error) {
	overview := &StatsOverview{}

	if err := h.db.Model(&models.Pet{}).Count(&overview.TotalPets).Error; err != nil {
		return nil, err
	}

	if err := h.db.Model(&models.Product{}).Count(&overview.TotalProducts).Error; err != nil {
		return nil, err
	}

	var totalAppointments int64
	if err := h.db.Model(&models.Appointment{}).Count(&totalAppointments).Error; err != nil {
		return nil, err
	}
	overview.MonthlyEarnings = float64(totalAppointments) * pricePerService

	petsByTypeSex, err := h.petsByTypeAndSex()
	if err != nil {
		return nil, err
	}
	overview.PetsByTypeSex = petsByTypeSex

	clientsByMonth, err := h.clientsByMonth()
	if err != nil {
		return nil, err
	}
	overview.ClientsByMonth = clientsByMonth

	return overview, nil
}

func (h *StatsHandler) petsByTypeAndSex() (map[string]map[string]int64, error) {
	stats := map[string]map[string]int64{
		"Dog": {"Male": 0, "Female": 0},
		"Cat": {"Male": 0, "Female": 0},
	}

	var pets []models.Pet
	if err := h.db.
		Select("type", "gender").
		Find(&pets).Error; err != nil {
		return nil, err
	}

	for _, pet := range pets {
		if byGender, ok := stats[pet.Type]; ok {
			if _, ok := byGender[pet.Gender]; ok {
				byGender[pet.Gender]++
			}
		}
	}

	return stats, nil
}

// clientsByMonth cuenta emails distintos con cita por mes del año en
// curso; índice 0 = enero.
func (h *StatsHandler) clientsByMonth() ([]int, error) {
	loc := timezone.Location(timezone.DefaultTimezone)
	now := timezone.Now()

	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
	yearEnd := yearStart.AddDate(1, 0, 0)

	var appointments []models.Appointment
	if err := h.db.
		Select("start_time", "user_email").
		Where("start_time >= ? AND start_time < ?", yearStart, yearEnd).
		Find(&appointments).Error; err != nil {
		return nil, err
	}

	monthly := make([]map[string]struct{}, 12)
	for _, ap := range appointments {
		if ap.UserEmail == "" {
			continue
		}
		month := int(ap.StartTime.In(loc).Month()) - 1
		if monthly[month] == nil {
			monthly[month] = make(map[string]struct{})
		}
		monthly[month][ap.UserEmail] = struct{}{}
	}

	out := make([]int, 12)
	for i, emails := range monthly {
		out[i] = len(emails)
	}

	return out, nil
}
