package services

import (
	"doener-shop/catalog"
	"doener-shop/models"
)

// BasePrice is the selected size's price for sized items and the item price
// otherwise.
func BasePrice(item models.MenuItem, sel models.Selection) models.Cents {
	if item.RequiresSize() && sel.Size != nil {
		if size, ok := item.FindSize(sel.Size.Name); ok {
			return size.Price
		}
	}
	return item.Price
}

func ExtrasPrice(sel models.Selection) models.Cents {
	return catalog.ExtraSurcharge.Mul(len(sel.Extras))
}

func UnitPrice(item models.MenuItem, sel models.Selection) models.Cents {
	return BasePrice(item, sel) + ExtrasPrice(sel)
}

func LineTotal(line models.CartLine) models.Cents {
	return UnitPrice(line.Item, line.Selection).Mul(line.Quantity)
}

func Subtotal(lines []models.CartLine) models.Cents {
	var total models.Cents
	for _, line := range lines {
		total += LineTotal(line)
	}
	return total
}

// DeliveryFee is charged only for delivery orders with a known zone.
func DeliveryFee(orderType models.OrderType, zone *models.DeliveryZone) models.Cents {
	if orderType != models.OrderTypeDelivery || zone == nil {
		return 0
	}
	return zone.Fee
}

func GrandTotal(subtotal models.Cents, orderType models.OrderType, zone *models.DeliveryZone) models.Cents {
	return subtotal + DeliveryFee(orderType, zone)
}
