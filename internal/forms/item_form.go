package forms

import (
	"fmt"

	"shopmart_dev_v1_202609/internal/model"
)

// 商品子表单的字段名按数字后缀展开：name_0, quantity_0, price_0, ...
// 渲染与提交必须从同一权威来源推导 N（路径参数或当前商品列表长度），
// 两边模式不一致会导致字段错位，这里由构造函数统一保证

// ==================== 表单构造 ====================

// ItemCountForm 商品数量选择表单
func ItemCountForm() *Form {
	return New(Field{
		Name:     "number_of_items",
		Label:    "Number of Items",
		Kind:     FieldInteger,
		Required: true,
		Min:      intPtr(1),
	})
}

// FillItemsForm 批量录入表单：N 组独立的 {名称, 数量, 价格}
func FillItemsForm(n int) *Form {
	fields := make([]Field, 0, n*3)
	for i := 0; i < n; i++ {
		fields = append(fields, itemTriple(i, "", "", "")...)
	}
	return New(fields...)
}

// UpdateItemsForm 批量修改表单
// 现有值作为默认值回填，另带隐藏 original_price 做页面回显。
// 降价判定不信任该隐藏字段，以更新时的库内读数为准
func UpdateItemsForm(items []model.Item) *Form {
	fields := make([]Field, 0, len(items)*4)
	for i, item := range items {
		fields = append(fields, itemTriple(i,
			item.Name,
			fmt.Sprintf("%d", item.Quantity),
			fmt.Sprintf("%d", item.Price),
		)...)
		fields = append(fields, Field{
			Name:  fmt.Sprintf("original_price_%d", i),
			Label: fmt.Sprintf("Item %d Original Price", i+1),
			Kind:  FieldHidden,
			Value: fmt.Sprintf("%d", item.Price),
		})
	}
	return New(fields...)
}

// itemTriple 第 i 组商品字段
func itemTriple(i int, name, quantity, price string) []Field {
	return []Field{
		{
			Name:     fmt.Sprintf("name_%d", i),
			Label:    fmt.Sprintf("Item %d Name", i+1),
			Kind:     FieldText,
			Required: true,
			Value:    name,
		},
		{
			Name:     fmt.Sprintf("quantity_%d", i),
			Label:    fmt.Sprintf("Item %d Quantity", i+1),
			Kind:     FieldInteger,
			Required: true,
			Min:      intPtr(1),
			Value:    quantity,
		},
		{
			Name:     fmt.Sprintf("price_%d", i),
			Label:    fmt.Sprintf("Item %d Price", i+1),
			Kind:     FieldInteger,
			Required: true,
			Min:      intPtr(0),
			Value:    price,
		},
	}
}

// ==================== 提交值提取 ====================

// ItemRow 校验通过后的一组商品输入
type ItemRow struct {
	Name     string
	Quantity int
	Price    int64
}

// ItemRows 按序提取 N 组商品输入
// 必须在 Bind 通过后调用
func (f *Form) ItemRows(n int) []ItemRow {
	rows := make([]ItemRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, ItemRow{
			Name:     f.String(fmt.Sprintf("name_%d", i)),
			Quantity: int(f.Int(fmt.Sprintf("quantity_%d", i))),
			Price:    f.Int(fmt.Sprintf("price_%d", i)),
		})
	}
	return rows
}
