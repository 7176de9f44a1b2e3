package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/huellitas-app/petcare-api/internal/session"
	"github.com/huellitas-app/petcare-api/internal/storage"

	"github.com/huellitas-app/petcare-api/internal/models"
)

const maxPhotoUploadBytes = 10 << 20 // 10 MB

type PetPhotoHandler struct {
	db     *gorm.DB
	photos *storage.PhotoStore
}

func NewPetPhotoHandler(db *gorm.DB, photos *storage.PhotoStore) *PetPhotoHandler {
	return &PetPhotoHandler{db: db, photos: photos}
}

// Upload recibe un multipart "photo", la convierte a webp, la sube a S3
// y guarda la URL en la mascota.
func (h *PetPhotoHandler) Upload(c *gin.Context) {
	if h.photos == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "photo_storage_not_configured"})
		return
	}

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

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_photo"})
		return
	}

	if file.Size > maxPhotoUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo_too_large"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_read_photo"})
		return
	}
	defer src.Close()

	img, err := storage.DecodePhoto(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_image"})
		return
	}

	url, err := h.photos.UploadPetPhoto(c.Request.Context(), img)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_upload_photo"})
		return
	}

	pet.PicURL = url
	if err := h.db.Save(&pet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_pet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pic_url": url})
}
