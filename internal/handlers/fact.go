package handlers

import (
	"math"
	"net/http"
	"time"

	"factshub/internal/middleware"
	"factshub/internal/models"
	"factshub/internal/services"
	"factshub/internal/utils"

	"github.com/gin-gonic/gin"
)

const recentCacheKey = "facts:recent"

type FactHandler struct{}

func NewFactHandler() *FactHandler {
	return &FactHandler{}
}

// invalidateListCaches drops cached read pages after a publish event.
func invalidateListCaches() {
	utils.GetCache().Delete(recentCacheKey)
}

// Index renders the home page: a random fact of the day plus the five most
// recent publications.
func (h *FactHandler) Index(c *gin.Context) {
	factOfDay, err := services.PickRandomPublished()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "could not load facts")
		return
	}

	var recent []models.Fact
	if cached := utils.GetCache().Get(recentCacheKey); cached != nil {
		recent = cached.([]models.Fact)
	} else {
		recent, err = services.RecentPublished(5)
		if err != nil {
			RenderError(c, http.StatusInternalServerError, "could not load facts")
			return
		}
		utils.GetCache().Set(recentCacheKey, recent, time.Minute)
	}

	var factOfDayHTML interface{}
	if factOfDay != nil {
		factOfDayHTML = utils.RenderMarkdown(factOfDay.Content)
	}

	Render(c, http.StatusOK, "index.html", gin.H{
		"Title":         "FactsHub",
		"FactOfDay":     factOfDay,
		"FactOfDayHTML": factOfDayHTML,
		"RecentFacts":   recent,
	})
}

// Archive renders the paginated archive with category filter and sort order.
func (h *FactHandler) Archive(c *gin.Context) {
	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	sort := c.DefaultQuery("sort", services.SortNewest)

	var categoryID *uint
	if raw := c.Query("category"); raw != "" {
		id := utils.StringToUint(raw)
		if id != 0 {
			categoryID = &id
		}
	}

	categories, err := services.Categories()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "could not load categories")
		return
	}

	facts, total, err := services.ListPublished(categoryID, sort, page)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "could not load facts")
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(services.PageSize)))
	if totalPages == 0 {
		totalPages = 1
	}

	selectedCategory := uint(0)
	if categoryID != nil {
		selectedCategory = *categoryID
	}

	Render(c, http.StatusOK, "archive.html", gin.H{
		"Title":            "Archive",
		"Facts":            facts,
		"Categories":       categories,
		"CurrentPage":      page,
		"TotalPages":       totalPages,
		"Sort":             sort,
		"SelectedCategory": selectedCategory,
	})
}

// Random returns one random published fact as JSON.
func (h *FactHandler) Random(c *gin.Context) {
	fact, err := services.PickRandomPublished()
	if err != nil {
		JSONError(c, err)
		return
	}
	if fact == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, fact)
}

// Detail returns a fact with its top-level comments and like counts as JSON.
func (h *FactHandler) Detail(c *gin.Context) {
	factID := utils.StringToUint(c.Param("id"))

	fact, err := services.GetFact(factID)
	if err != nil {
		JSONError(c, err)
		return
	}

	comments, err := services.ListComments(fact.ID)
	if err != nil {
		JSONError(c, err)
		return
	}

	type commentJSON struct {
		ID          uint      `json:"id"`
		Author      string    `json:"author"`
		Content     string    `json:"content"`
		ContentHTML string    `json:"content_html"`
		Likes       int64     `json:"likes"`
		CreatedAt   time.Time `json:"created_at"`
	}
	out := make([]commentJSON, len(comments))
	for i := range comments {
		com := &comments[i]
		out[i] = commentJSON{
			ID:          com.ID,
			Author:      com.AuthorName(),
			Content:     com.Content,
			ContentHTML: string(utils.RenderMarkdown(com.Content)),
			Likes:       com.Likes,
			CreatedAt:   com.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"fact":     fact,
		"comments": out,
	})
}

// ShowSubmit renders the submission form.
func (h *FactHandler) ShowSubmit(c *gin.Context) {
	categories, err := services.Categories()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "could not load categories")
		return
	}

	Render(c, http.StatusOK, "fact/submit.html", gin.H{
		"Title":      "Submit a fact",
		"Categories": categories,
	})
}

// Submit handles the submission form post. Moderators and admins publish
// immediately, everyone else goes to the moderation queue.
func (h *FactHandler) Submit(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	draft := services.FactDraft{
		Title:      c.PostForm("title"),
		Content:    c.PostForm("content"),
		Source:     c.PostForm("source"),
		CategoryID: utils.StringToUint(c.PostForm("category_id")),
	}

	fact, err := services.SubmitFact(identity, draft)
	if err != nil {
		JSONError(c, err)
		return
	}

	if fact.IsPublished() {
		invalidateListCaches()
		c.JSON(http.StatusCreated, gin.H{"success": "fact published"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": "fact sent for moderation"})
}
