package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/nepsepulse/internal/domain/dto"
	"github.com/guttosm/nepsepulse/internal/nepse"
	"github.com/guttosm/nepsepulse/internal/service"
)

// Handler provides the HTTP handlers for every market-data endpoint.
//
// Responsibilities:
//   - Translate upstream results into JSON (or HTML for the link indexes)
//   - Map the error taxonomy onto HTTP status codes:
//     unknown symbol / malformed upstream data → 404, anything else → 500
type Handler struct {
	market service.MarketService
	stats  service.StatsService
}

// NewHandler constructs a Handler from the two services.
func NewHandler(market service.MarketService, stats service.StatsService) *Handler {
	return &Handler{market: market, stats: stats}
}

// GetRoot godoc
// @Summary      API directory
// @Description  Lists every available route plus links to the generated documentation
// @Tags         meta
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       / [get]
func (h *Handler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":          "Welcome to the Nepal Stock Exchange API",
		"description":      "This API provides access to NEPSE market data.",
		"available_routes": routePaths,
		"documentation": gin.H{
			"swagger": "/swagger/index.html",
		},
	})
}

// GetSummary godoc
// @Summary      Get market summary
// @Description  Returns the summary of today's market activity keyed by metric name
// @Tags         statistics
// @Produce      json
// @Success      200 {object} map[string]float64
// @Failure      500 {object} dto.ErrorResponse
// @Router       /summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	out, err := h.market.Summary(c.Request.Context())
	if err != nil {
		h.respondFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetNepseIndex godoc
// @Summary      Get NEPSE index
// @Description  Returns the current NEPSE index records keyed by index name
// @Tags         indices
// @Produce      json
// @Success      200 {object} map[string]models.IndexValue
// @Failure      500 {object} dto.ErrorResponse
// @Router       /nepse-index [get]
func (h *Handler) GetNepseIndex(c *gin.Context) {
	out, err := h.market.Index(c.Request.Context())
	if err != nil {
		h.respondFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetNepseSubIndices godoc
// @Summary      Get NEPSE sub-indices
// @Description  Returns all sector sub-indices keyed by index name
// @Tags         indices
// @Produce      json
// @Success      200 {object} map[string]models.IndexValue
// @Failure      500 {object} dto.ErrorResponse
// @Router       /nepse-sub-indices [get]
func (h *Handler) GetNepseSubIndices(c *gin.Context) {
	out, err := h.market.SubIndices(c.Request.Context())
	if err != nil {
		h.respondFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetTopTenTradeScrips godoc
// @Summary      Get top ten trade scrips
// @Description  Returns the top scrips by traded share quantity
// @Tags         statistics
// @Produce      json
// @Success      200 {array} models.TradeLeader
// @Failure      500 {object} dto.ErrorResponse
// @Router       /top-ten-trade-scrips [get]
func (h *Handler) GetTopTenTradeScrips(c *gin.Context) {
	out, err := h.market.TopTradeScrips(c.Request.Context())
	if err != nil {
		h.respondFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetTopTenTurnoverScrips godoc
// @Summary      Get top ten turnover scrips
// @Description  Returns the top scrips by turnover value
// @Tags         statistics
// @Produce      json
// @Success      200 {array} models.TurnoverLeader
// @Failure      500 {object} dto.ErrorResponse
// @Router       /top-ten-turnover-scrips [get]
func (h *Handler) GetTopTenTurnoverScrips(c *gin.Context) {
	out, err := h.market.TopTurnoverScrips(c.Request.Context())
	if err != nil {
		h.respondFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetTopTenTransactionScrips godoc
// @Summary      Get top ten transaction scrips
// @Description  Returns the top scrips by number of transactions
// @Tags         statistics
// @Produce      json
// @Success      200 {array} models.TransactionLeader
// @Failure      500 {object} dto.ErrorResponse
// @Router       /top-ten-transaction-scrips [get]
func (h *Handler) GetTopTenTransactionScrips(c *gin.Context) {
	out, err := h.market.TopTransactionScrips(c.Request.Context())
	if err != nil {
		h.respondFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetSupplyDemand godoc
// @Summary      Get supply and demand
// @Description  Returns the market-wide open-order summaries for both sides of the book
// @Tags         statistics
// @Produce      json
// @Success      200 {object} models.SupplyDemand
// @Failure      500 {object} dto.ErrorResponse
// @Router       /supply-demand [get]
func (h *Handler) GetSupplyDemand(c *gin.Context) {
	out, err := h.market.SupplyDemand(c.Request.Context())
	if err != nil {
		h.respondFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetTopGainers godoc
// @Summary      Get top gainers
// @Description  Returns the securities with the highest positive price change
// @Tags         statistics
// @Produce      json
// @Success      200 {array} models.PriceMover
// @Failure      500 {object} dto.ErrorResponse
// @Router       /top-gainers [get]
func (h *Handler) GetTopGainers(c *gin.Context) {
	out, err := h.market.TopGainers(c.Request.Context())
	if err != nil {
		h.respondFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetTopLosers godoc
// @Summary      Get top losers
// @Description  Returns the securities with the highest negative price change
// @Tags         statistics
// @Produce      json
// @Success      200 {array} models.PriceMover
// @Failure      500 {object} dto.ErrorResponse
// @Router       /top-losers [get]
func (h *Handler) GetTopLosers(c *gin.Context) {
	out, err := h.market.TopLosers(c.Request.Context())
	if err != nil {
		h.respondFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetIsNepseOpen godoc
// @Summary      Check whether NEPSE is open
// @Description  Returns the exchange's current market-open flag
// @Tags         statistics
// @Produce      json
// @Success      200 {object} models.MarketStatus
// @Failure      500 {object} dto.ErrorResponse
// @Router       /is-nepse-open [get]
func (h *Handler) GetIsNepseOpen(c *gin.Context) {
	out, err := h.market.MarketStatus(c.Request.Context())
	if err != nil {
		h.respondFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetDailyNepseIndexGraph godoc
// @Summary      Get daily NEPSE index graph data
// @Description  Returns the historical series of the NEPSE index
// @Tags         indices
// @Produce      json
// @Success      200 {array} models.GraphPoint
// @Failure      500 {object} dto.ErrorResponse
// @Router       /daily-nepse-index-graph [get]
func (h *Handler) GetDailyNepseIndexGraph(c *gin.Context) {
	out, err := h.market.IndexGraph(c.Request.Context())
	if err != nil {
		h.respondFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListDailyScripPriceGraph godoc
// @Summary      List all available scrips
// @Description  Renders an HTML index of per-scrip price-graph links
// @Tags         prices
// @Produce      html
// @Success      200 {string} string
// @Failure      500 {object} dto.ErrorResponse
// @Router       /daily-scrip-price-graph [get]
func (h *Handler) ListDailyScripPriceGraph(c *gin.Context) {
	h.renderSymbolIndex(c, "Available Scrips", routePaths["DailyScripPriceGraph"])
}

// GetDailyScripPriceGraph godoc
// @Summary      Get daily price graph for a scrip
// @Description  Returns the historical price series for the given symbol
// @Tags         prices
// @Produce      json
// @Param        symbol path string true "Stock symbol/ticker"
// @Success      200 {array} models.GraphPoint
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /daily-scrip-price-graph/{symbol} [get]
func (h *Handler) GetDailyScripPriceGraph(c *gin.Context) {
	symbol := c.Param("symbol")
	out, err := h.market.ScripPriceGraph(c.Request.Context(), symbol)
	if err != nil {
		h.respondSymbolError(c, symbol, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetCompanyList godoc
// @Summary      Get company list
// @Description  Returns every company listed on the exchange
// @Tags         companies
// @Produce      json
// @Success      200 {array} models.Company
// @Failure      500 {object} dto.ErrorResponse
// @Router       /company-list [get]
func (h *Handler) GetCompanyList(c *gin.Context) {
	out, err := h.market.CompanyList(c.Request.Context())
	if err != nil {
		h.respondFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetSecurityList godoc
// @Summary      Get security list
// @Description  Returns every tradable security
// @Tags         companies
// @Produce      json
// @Success      200 {array} models.Security
// @Failure      500 {object} dto.ErrorResponse
// @Router       /security-list [get]
func (h *Handler) GetSecurityList(c *gin.Context) {
	out, err := h.market.SecurityList(c.Request.Context())
	if err != nil {
		h.respondFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetPriceVolume godoc
// @Summary      Get price and volume data
// @Description  Returns the day's price/volume snapshot for all securities
// @Tags         prices
// @Produce      json
// @Success      200 {array} models.PriceVolume
// @Failure      500 {object} dto.ErrorResponse
// @Router       /price-volume [get]
func (h *Handler) GetPriceVolume(c *gin.Context) {
	out, err := h.market.PriceVolume(c.Request.Context())
	if err != nil {
		h.respondFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetLiveMarket godoc
// @Summary      Get live market data
// @Description  Returns real-time data for all securities currently trading
// @Tags         statistics
// @Produce      json
// @Success      200 {array} models.LiveQuote
// @Failure      500 {object} dto.ErrorResponse
// @Router       /live-market [get]
func (h *Handler) GetLiveMarket(c *gin.Context) {
	out, err := h.market.LiveMarket(c.Request.Context())
	if err != nil {
		h.respondFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListMarketDepth godoc
// @Summary      List all symbols for market depth
// @Description  Renders an HTML index of per-symbol market-depth links
// @Tags         statistics
// @Produce      html
// @Success      200 {string} string
// @Failure      500 {object} dto.ErrorResponse
// @Router       /market-depth [get]
func (h *Handler) ListMarketDepth(c *gin.Context) {
	h.renderSymbolIndex(c, "Market Depth - Available Symbols", routePaths["MarketDepth"])
}

// GetMarketDepth godoc
// @Summary      Get market depth for a symbol
// @Description  Returns the buy/sell order book for the given symbol
// @Tags         statistics
// @Produce      json
// @Param        symbol path string true "Stock symbol/ticker"
// @Success      200 {object} models.MarketDepth
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /market-depth/{symbol} [get]
func (h *Handler) GetMarketDepth(c *gin.Context) {
	symbol := c.Param("symbol")
	out, err := h.market.MarketDepth(c.Request.Context(), symbol)
	if err != nil {
		h.respondSymbolError(c, symbol, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetMarketStats godoc
// @Summary      Get comprehensive market statistics
// @Description  Returns trade volume, turnover, and transaction counts per security and per sector, with sub-index performance
// @Tags         statistics
// @Produce      json
// @Success      200 {object} models.MarketStats
// @Failure      500 {object} dto.ErrorResponse
// @Router       /trade-turnover-transaction-subindices [get]
func (h *Handler) GetMarketStats(c *gin.Context) {
	out, err := h.stats.MarketStats(c.Request.Context())
	if err != nil {
		h.respondFeedError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// renderSymbolIndex renders the static HTML link index used by the
// scrip-graph and market-depth list routes.
func (h *Handler) renderSymbolIndex(c *gin.Context, title, basePath string) {
	securities, err := h.market.SecurityList(c.Request.Context())
	if err != nil {
		h.respondFeedError(c, err)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>", title)
	for i, sec := range securities {
		if i > 0 {
			b.WriteString("<BR>")
		}
		fmt.Fprintf(&b, "<a href=%s/%s> %s </a>", basePath, sec.Symbol, sec.Symbol)
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(b.String()))
}

// respondFeedError maps an upstream error for a non-symbol route.
func (h *Handler) respondFeedError(c *gin.Context, err error) {
	if errors.Is(err, nepse.ErrMalformedData) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("upstream returned invalid data", err))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch market data", err))
}

// respondSymbolError maps an upstream error for a symbol-parameterized
// route, naming the symbol in 404 responses.
func (h *Handler) respondSymbolError(c *gin.Context, symbol string, err error) {
	switch {
	case errors.Is(err, nepse.ErrSymbolNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(fmt.Sprintf("data for symbol %s not found", symbol), err))
	case errors.Is(err, nepse.ErrMalformedData):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(fmt.Sprintf("invalid data received for %s", symbol), err))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(fmt.Sprintf("error fetching data for %s", symbol), err))
	}
}
