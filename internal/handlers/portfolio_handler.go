package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "cryptofolio/internal/errors"
	"cryptofolio/internal/models"
	"cryptofolio/internal/services"
)

// PortfolioHandler handles crypto asset CRUD requests.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// AssetResponse is the serialized form of a crypto asset. Mapping is explicit
// so the wire format stays stable regardless of model changes: quantities keep
// full precision, prices render with two decimals, dates use a fixed layout.
type AssetResponse struct {
	ID            uint   `json:"id"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Quantity      string `json:"quantity"`
	PurchasePrice string `json:"purchasePrice"`
	PurchaseDate  string `json:"purchaseDate"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

func toAssetResponse(asset *models.CryptoAsset) AssetResponse {
	return AssetResponse{
		ID:            asset.ID,
		Symbol:        asset.Symbol,
		Name:          asset.Name,
		Quantity:      asset.Quantity.String(),
		PurchasePrice: asset.PurchasePrice.StringFixed(2),
		PurchaseDate:  asset.PurchaseDate.Format(services.PurchaseDateLayout),
		CreatedAt:     asset.CreatedAt.Format(services.PurchaseDateLayout),
		UpdatedAt:     asset.UpdatedAt.Format(services.PurchaseDateLayout),
	}
}

// List handles listing all assets of the authenticated user.
// @Summary     List assets
// @Description List all crypto assets of the authenticated user, newest first
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Assets and count"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [get]
func (h *PortfolioHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assets, err := h.portfolioService.ListAssets(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data := make([]AssetResponse, 0, len(assets))
	for i := range assets {
		data = append(data, toAssetResponse(&assets[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"assets": data,
		"count":  len(data),
	})
}

// Show handles fetching a single asset by ID.
// @Summary     Show asset
// @Description Get one crypto asset owned by the authenticated user
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Asset ID"
// @Success     200 {object} AssetResponse "Asset"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/{id} [get]
func (h *PortfolioHandler) Show(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	asset, err := h.portfolioService.GetAsset(userID, assetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAssetResponse(asset))
}

// Create handles adding a new asset to the portfolio.
// @Summary     Create asset
// @Description Add a new crypto asset to the authenticated user's portfolio
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body services.AssetInput true "Asset fields"
// @Success     201 {object} map[string]interface{} "Created asset"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [post]
func (h *PortfolioHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var input services.AssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.portfolioService.CreateAsset(userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Asset created successfully",
		"asset":   toAssetResponse(asset),
	})
}

// Update handles partially updating an existing asset.
// @Summary     Update asset
// @Description Apply a partial update to a crypto asset owned by the authenticated user
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Asset ID"
// @Param       request body services.AssetInput true "Fields to update"
// @Success     200 {object} map[string]interface{} "Updated asset"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/{id} [put]
func (h *PortfolioHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var input services.AssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.portfolioService.UpdateAsset(userID, assetID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Asset updated successfully",
		"asset":   toAssetResponse(asset),
	})
}

// Delete handles permanently removing an asset.
// @Summary     Delete asset
// @Description Permanently delete a crypto asset owned by the authenticated user
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Asset ID"
// @Success     200 {object} map[string]interface{} "Deletion acknowledged"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/{id} [delete]
func (h *PortfolioHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.portfolioService.DeleteAsset(userID, assetID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Asset deleted successfully",
	})
}
