package paintings

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"gallery-app/database"
	"gallery-app/internal/domain/paintings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func paintingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		return 0, false
	}
	return uint(id), true
}

// ------------------------------
// GET /paintings/
// ------------------------------
func ListPaintings(c *gin.Context) {
	all := make([]paintings.Painting, 0)
	if err := database.DB.Find(&all).Error; err != nil {
		log.Println("list paintings:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load paintings"})
		return
	}

	c.JSON(http.StatusOK, all)
}

// ------------------------------
// POST /paintings/
// ------------------------------
func CreatePainting(c *gin.Context) {
	var req CreatePaintingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := paintings.Painting{
		CreatedDate:        time.Now().UTC(),
		CreatedBy:          req.CreatedBy,
		Size:               req.Size,
		IsAvailableForSale: true,
		Price:              *req.Price,
	}
	if req.IsAvailableForSale != nil {
		p.IsAvailableForSale = *req.IsAvailableForSale
	}

	if err := database.DB.Create(&p).Error; err != nil {
		log.Println("create painting:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create painting"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// ------------------------------
// PUT /paintings/:id
// ------------------------------
// Full replace of the admin-editable fields. Sale metadata is untouched:
// a replace does not unsell a painting.
func ReplacePainting(c *gin.Context) {
	id, ok := paintingID(c)
	if !ok {
		return
	}

	var req CreatePaintingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var p paintings.Painting
	if err := database.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
			return
		}
		log.Println("replace painting:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load painting"})
		return
	}

	p.CreatedBy = req.CreatedBy
	p.Size = req.Size
	p.IsAvailableForSale = true
	if req.IsAvailableForSale != nil {
		p.IsAvailableForSale = *req.IsAvailableForSale
	}
	p.Price = *req.Price

	if err := database.DB.Save(&p).Error; err != nil {
		log.Println("replace painting:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update painting"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// ------------------------------
// PATCH /paintings/:id
// ------------------------------
func PatchPainting(c *gin.Context) {
	id, ok := paintingID(c)
	if !ok {
		return
	}

	var req UpdatePaintingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var p paintings.Painting
	if err := database.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
			return
		}
		log.Println("patch painting:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load painting"})
		return
	}

	if req.CreatedBy != nil {
		p.CreatedBy = *req.CreatedBy
	}
	if req.Size != nil {
		p.Size = *req.Size
	}
	if req.IsAvailableForSale != nil {
		p.IsAvailableForSale = *req.IsAvailableForSale
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.SoldTo != nil {
		p.SoldTo = req.SoldTo
	}
	if req.SoldDate != nil {
		p.SoldDate = req.SoldDate
	}

	if err := database.DB.Save(&p).Error; err != nil {
		log.Println("patch painting:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update painting"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// ------------------------------
// PATCH /paintings/:id/buy
// ------------------------------
// The whole read-check-write runs in one transaction. On postgres the row
// is locked for the duration, so two concurrent buys of the same painting
// serialize and the loser sees the availability error.
func BuyPainting(c *gin.Context) {
	id, ok := paintingID(c)
	if !ok {
		return
	}

	var req BuyPaintingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var p paintings.Painting
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		q := tx
		// sqlite has no FOR UPDATE; its transactions serialize writers anyway
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&p, id).Error; err != nil {
			return err
		}

		if err := p.MarkSold(req.SoldTo, req.SoldDate); err != nil {
			return err
		}

		return tx.Save(&p).Error
	})

	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		case errors.Is(err, paintings.ErrNotForSale):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Painting not available for sale"})
		default:
			log.Println("buy painting:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

// ------------------------------
// GET /paintings/sold
// ------------------------------
func ListSoldPaintings(c *gin.Context) {
	f, err := soldFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sold := make([]paintings.Painting, 0)
	if err := soldPaintingsQuery(database.DB, f).Find(&sold).Error; err != nil {
		log.Println("list sold paintings:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sold paintings"})
		return
	}

	c.JSON(http.StatusOK, sold)
}
