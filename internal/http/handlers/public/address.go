package public

import (
	"github.com/dujiao-next/estore/internal/http/handlers/shared"
	"github.com/dujiao-next/estore/internal/http/response"
	"github.com/dujiao-next/estore/internal/service"

	"github.com/gin-gonic/gin"
)

// AddressRequest 新增地址请求
type AddressRequest struct {
	Location      string `json:"location"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
}

// ListAddresses 当前用户地址簿
func (h *Handler) ListAddresses(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	addresses, err := h.AddressService.List(uid)
	if err != nil {
		respondWithMappedError(c, err, "error.address_failed")
		return
	}
	response.Success(c, addresses)
}

// CreateAddress 新增地址
func (h *Handler) CreateAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	address, err := h.AddressService.Create(uid, service.AddressInput{
		Location:      req.Location,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
	})
	if err != nil {
		respondWithMappedError(c, err, "error.address_failed")
		return
	}
	response.Success(c, address)
}

// DeleteAddress 删除地址，历史订单保留但不再关联
func (h *Handler) DeleteAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.AddressService.Delete(uid, id); err != nil {
		respondWithMappedError(c, err, "error.address_failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
