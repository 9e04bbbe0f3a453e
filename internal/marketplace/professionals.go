package marketplace

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/valeconecta/conecta/internal/utils"
)

// GET /pros?q=&service=&city=&max_price=&min_rating=
func (h *Handler) ListProfessionals(c echo.Context) error {
	maxPrice, ok := queryFloat(c, "max_price")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid max_price"})
	}
	minRating, ok := queryFloat(c, "min_rating")
	if !ok || minRating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid min_rating"})
	}

	f := ProfessionalFilter{
		Query:     c.QueryParam("q"),
		Services:  queryList(c, "service"),
		Cities:    queryList(c, "city"),
		MaxPrice:  maxPrice,
		MinRating: minRating,
	}
	pros := FilterProfessionals(h.store.ListProfessionals(), f)

	views := make([]ProfessionalView, 0, len(pros))
	for _, p := range pros {
		views = append(views, PublicProfessionalView(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"professionals": views, "count": len(views)})
}

// GET /pros/:id
func (h *Handler) GetProfessional(c echo.Context) error {
	p, err := h.store.GetProfessional(c.Param("id"))
	if err != nil {
		return utils.Fail(c, err)
	}
	return c.JSON(http.StatusOK, PublicProfessionalView(p))
}
