package model

// Shop 店铺
// 每个店铺归属且仅归属一个 Admin，创建后不可转让
type Shop struct {
	BaseModel
	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:200;not null" json:"address"`

	// 归属管理员 (Belongs To)
	AdminID int64  `gorm:"index;not null" json:"admin_id"`
	Admin   *Admin `gorm:"foreignKey:AdminID" json:"-"`

	// 店内商品 (Has Many)
	Items []Item `gorm:"foreignKey:ShopID" json:"items,omitempty"`
}

// Item 商品
// 价格按整数最小货币单位存储，不引入浮点
type Item struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"name"`
	Quantity int    `gorm:"not null" json:"quantity"` // 业务层保证 >= 1
	Price    int64  `gorm:"not null" json:"price"`

	ShopID int64 `gorm:"index;not null" json:"shop_id"`
	Shop   *Shop `gorm:"foreignKey:ShopID" json:"-"`
}

func (Shop) TableName() string {
	return "shops"
}

func (Item) TableName() string {
	return "items"
}
