// Package model holds the GORM structs mapped one-to-one onto database tables.
package model

// All lists every persisted model, in dependency order.
func All() []any {
	return []any{
		UserModel{},
		RefreshTokenModel{},
		AddressModel{},
		UserDeviceModel{},
		CategoryModel{},
		ProductModel{},
		CartItemModel{},
		CouponModel{},
		OrderModel{},
		OrderItemModel{},
		PreOrderModel{},
		ReviewModel{},
		FavoriteModel{},
		NotificationModel{},
		BlogModel{},
		EventModel{},
		SellerMetricModel{},
	}
}
