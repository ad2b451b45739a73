package service

import (
	"strings"
	"time"

	"github.com/superman-store/internal/constants"
	"github.com/superman-store/internal/models"
)

// 终态：只允许原状态重入
var terminalDeliveryStatuses = map[string]struct{}{
	constants.DeliveryStatusDelivered: {},
	constants.DeliveryStatusFailed:    {},
	constants.DeliveryStatusReturned:  {},
}

func deliveryFlowIndex(status string) int {
	for i, s := range constants.DeliveryStatusFlow {
		if s == status {
			return i
		}
	}
	return -1
}

// canTransitionDelivery 主流程只能前进或原地；在途状态可直接转为 Failed/Returned
func canTransitionDelivery(from, to string) bool {
	if from == to {
		return true
	}
	if _, ok := terminalDeliveryStatuses[from]; ok {
		return false
	}
	if to == constants.DeliveryStatusFailed || to == constants.DeliveryStatusReturned {
		return true
	}
	fromIdx := deliveryFlowIndex(from)
	toIdx := deliveryFlowIndex(to)
	return fromIdx >= 0 && toIdx > fromIdx
}

// applyDeliveryTransition 写入状态与时间戳
// 首次进入 Shipped 记录发货时间与预计送达；首次进入 Delivered 记录签收时间。
func applyDeliveryTransition(delivery *models.Delivery, next, note string, now time.Time) error {
	if !canTransitionDelivery(delivery.Status, next) {
		return ErrInvalidTransition
	}
	now = now.UTC()

	// 跳过 Shipped 直接进入后续在途状态时同样补记发货时间
	if deliveryFlowIndex(next) >= deliveryFlowIndex(constants.DeliveryStatusShipped) && delivery.ShippingDate == nil {
		shippedAt := now
		delivery.ShippingDate = &shippedAt
		delivery.EstimatedDelivery = delivery.EstimateDelivery()
	}
	if next == constants.DeliveryStatusDelivered && delivery.DeliveryDate == nil {
		deliveredAt := now
		delivery.DeliveryDate = &deliveredAt
	}
	delivery.Status = next

	note = strings.TrimSpace(note)
	if note != "" {
		entry := "[" + now.Format(time.RFC3339) + "] " + note
		if delivery.Notes == nil || strings.TrimSpace(*delivery.Notes) == "" {
			delivery.Notes = &entry
		} else {
			combined := *delivery.Notes + "\n" + entry
			delivery.Notes = &combined
		}
	}
	return nil
}
