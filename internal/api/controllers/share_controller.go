package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type ShareController struct {
	shareLinkService services.ShareLinkServiceInterface
	itineraryService services.ItineraryServiceInterface
}

func NewShareController(
	shareLinkService services.ShareLinkServiceInterface,
	itineraryService services.ItineraryServiceInterface,
) *ShareController {
	return &ShareController{
		shareLinkService: shareLinkService,
		itineraryService: itineraryService,
	}
}

type shareBody struct {
	request_models.ShareRequest
	response_models.ItineraryResponse
}

// CreateShareLink godoc
// @Summary Create a shareable link
// @Description Encode an itinerary into a compact share URL. The body is either a stored itinerary reference (itinerary_id, requires a bearer token) or an inline, never-persisted itinerary document.
// @Tags Share
// @Accept json
// @Produce json
// @Param request body response_models.ItineraryResponse true "Itinerary document or {itinerary_id}"
// @Success 200 {object} response_models.ShareLinkResponse
// @Failure 400 {object} utils.APIResponse
// @Router /share [post]
func (s *ShareController) CreateShareLink(c *gin.Context) {
	var body shareBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary payload")
		return
	}

	doc := &body.ItineraryResponse
	if body.ItineraryID != "" {
		stored, err := s.itineraryService.GetItinerary(c.Request.Context(), bearerUserID(c), body.ItineraryID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		doc = stored
	}

	link, err := s.shareLinkService.Encode(doc)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.ShareLinkResponse{URL: link}, "Share link created successfully")
}

// bearerUserID extracts the account id from an Authorization header on
// routes outside the JWT middleware. Sharing inline documents needs no
// identity; sharing a stored itinerary does.
func bearerUserID(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	claims, err := utils.ValidateToken(strings.TrimPrefix(auth, "Bearer "))
	if err != nil {
		return ""
	}
	return claims.UserID
}

// ResolveShareLink godoc
// @Summary Resolve a share token
// @Description Decode a share token into a best-effort itinerary preview. Decode failures are a 400; clients fall back to the planning form.
// @Tags Share
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Router /share/{token} [get]
func (s *ShareController) ResolveShareLink(c *gin.Context) {
	preview, err := s.shareLinkService.Decode(c.Param("token"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, preview, "Share link resolved successfully")
}

// ShareQRCode godoc
// @Summary QR code for a share token
// @Description Render the share URL for an existing token as a PNG QR code
// @Tags Share
// @Produce png
// @Param token path string true "Share token"
// @Success 200 {file} png
// @Failure 400 {object} utils.APIResponse
// @Router /share/{token}/qr [get]
func (s *ShareController) ShareQRCode(c *gin.Context) {
	token := c.Param("token")
	// Validate before rendering so a broken token 400s instead of producing
	// a QR code that leads nowhere.
	if _, err := s.shareLinkService.Decode(token); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	shareURL := c.Request.Host + "/share/" + token
	png, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
