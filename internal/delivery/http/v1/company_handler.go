package v1

import (
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

// NewCompanyHandler registers company routes
func NewCompanyHandler(api *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := api.Group("/companies")
	{
		companies.GET("", handler.List)
		companies.GET("/:id", handler.GetDetails)
	}
}

// ListCompanies godoc
// @Summary      List companies
// @Description  Every company with the number of jobs it has posted
// @Tags         companies
// @Produce      json
// @Success      200  {array}   domain.CompanyWithJobCount
// @Failure      500  {object}  response.ErrorBody
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companyUC.ListCompanies(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, companies)
}

// GetCompany godoc
// @Summary      Get company
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  domain.Company
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	company, err := h.companyUC.GetCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, company)
}
