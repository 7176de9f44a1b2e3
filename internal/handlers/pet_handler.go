package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/huellitas-app/petcare-api/internal/audit"
	"github.com/huellitas-app/petcare-api/internal/models"
	"github.com/huellitas-app/petcare-api/internal/session"
)

// ======================================================
// HANDLER
// ======================================================

type PetHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPetHandler(db *gorm.DB, audit *audit.Dispatcher) *PetHandler {
	return &PetHandler{db: db, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type MeasureRequest struct {
	Number float64 `json:"number"`
	Unit   string  `json:"unit"`
}

type CreatePetRequest struct {
	Name   string         `json:"name" binding:"required"`
	Type   string         `json:"type"`
	Gender string         `json:"gender"`
	Breed  string         `json:"breed"`
	Size   string         `json:"size"`
	Age    MeasureRequest `json:"age"`
	Weight MeasureRequest `json:"weight"`
	PicURL string         `json:"pic_url"`
}

type UpdatePetRequest struct {
	Name   *string         `json:"name,omitempty"`
	Type   *string         `json:"type,omitempty"`
	Gender *string         `json:"gender,omitempty"`
	Breed  *string         `json:"breed,omitempty"`
	Size   *string         `json:"size,omitempty"`
	Age    *MeasureRequest `json:"age,omitempty"`
	Weight *MeasureRequest `json:"weight,omitempty"`
	PicURL *string         `json:"pic_url,omitempty"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *PetHandler) Create(c *gin.Context) {
	sess := session.FromGin(c)

	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	pet := models.Pet{
		OwnerID: sess.UserID,
		Name:    req.Name,
		Type:    req.Type,
		Gender:  req.Gender,
		Breed:   req.Breed,
		Size:    req.Size,
		Age:     models.Measure{Number: req.Age.Number, Unit: req.Age.Unit},
		Weight:  models.Measure{Number: req.Weight.Number, Unit: req.Weight.Unit},
		PicURL:  req.PicURL,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_pet"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:    &sess.UserID,
		UserEmail: sess.Email,
		Action:    "pet_created",
		Entity:    "pet",
		EntityID:  &pet.ID,
	})

	c.JSON(http.StatusCreated, pet)
}

// ListMine devuelve solo las mascotas del dueño de la sesión.
func (h *PetHandler) ListMine(c *gin.Context) {
	sess := session.FromGin(c)

	var pets []models.Pet
	if err := h.db.
		Where("owner_id = ?", sess.UserID).
		Order("id ASC").
		Find(&pets).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_pets"})
		return
	}

	c.JSON(http.StatusOK, pets)
}

// ListAll es la vista de staff (dashboard) sin filtro por dueño.
func (h *PetHandler) ListAll(c *gin.Context) {
	var pets []models.Pet
	if err := h.db.
		Order("id ASC").
		Find(&pets).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_pets"})
		return
	}

	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) Update(c *gin.Context) {
	sess := session.FromGin(c)
	id := c.Param("id")

	var pet models.Pet
	if err := h.db.
		Where("id = ? AND owner_id = ?", id, sess.UserID).
		First(&pet).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "pet_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_pet"})
		return
	}

	var req UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Type != nil {
		pet.Type = *req.Type
	}
	if req.Gender != nil {
		pet.Gender = *req.Gender
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.Size != nil {
		pet.Size = *req.Size
	}
	if req.Age != nil {
		pet.Age = models.Measure{Number: req.Age.Number, Unit: req.Age.Unit}
	}
	if req.Weight != nil {
		pet.Weight = models.Measure{Number: req.Weight.Number, Unit: req.Weight.Unit}
	}
	if req.PicURL != nil {
		pet.PicURL = *req.PicURL
	}

	if err := h.db.Save(&pet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_pet"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:    &sess.UserID,
		UserEmail: sess.Email,
		Action:    "pet_updated",
		Entity:    "pet",
		EntityID:  &pet.ID,
	})

	c.JSON(http.StatusOK, pet)
}

// Delete borra solo la mascota. Las citas que la referencian quedan
// intactas: no hay cascada (las citas guardan pet_name desnormalizado).
func (h *PetHandler) Delete(c *gin.Context) {
	sess := session.FromGin(c)
	id := c.Param("id")

	var pet models.Pet
	if err := h.db.
		Where("id = ? AND owner_id = ?", id, sess.UserID).
		First(&pet).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "pet_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_pet"})
		return
	}

	if err := h.db.Delete(&pet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_pet"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:    &sess.UserID,
		UserEmail: sess.Email,
		Action:    "pet_deleted",
		Entity:    "pet",
		EntityID:  &pet.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
