package forms

import (
	"testing"

	"shopmart_dev_v1_202609/internal/model"
)

// ==================== 测试辅助 ====================

// values 模拟一次表单提交
func values(m map[string]string) func(string) string {
	return func(name string) string {
		return m[name]
	}
}

// ==================== 数量选择表单 ====================

func TestItemCountForm_Bind(t *testing.T) {
	form := ItemCountForm()
	if ok := form.Bind(values(map[string]string{"number_of_items": "3"})); !ok {
		t.Fatalf("合法数量被拒绝: %+v", form.Fields)
	}
	if n := form.Int("number_of_items"); n != 3 {
		t.Errorf("number_of_items = %d, want 3", n)
	}
}

func TestItemCountForm_RejectsZero(t *testing.T) {
	form := ItemCountForm()
	if ok := form.Bind(values(map[string]string{"number_of_items": "0"})); ok {
		t.Fatal("数量 0 应当被拒绝")
	}
	if form.Fields[0].Error == "" {
		t.Error("未回填字段级错误")
	}
}

func TestItemCountForm_RejectsNonInteger(t *testing.T) {
	form := ItemCountForm()
	if ok := form.Bind(values(map[string]string{"number_of_items": "abc"})); ok {
		t.Fatal("非整数应当被拒绝")
	}
}

// ==================== 批量录入表单 ====================

func TestFillItemsForm_Shape(t *testing.T) {
	form := FillItemsForm(3)
	if len(form.Fields) != 9 {
		t.Fatalf("字段数 = %d, want 9", len(form.Fields))
	}

	// 第 i 组字段按 name_i / quantity_i / price_i 顺序展开
	wantNames := []string{
		"name_0", "quantity_0", "price_0",
		"name_1", "quantity_1", "price_1",
		"name_2", "quantity_2", "price_2",
	}
	for i, want := range wantNames {
		if form.Fields[i].Name != want {
			t.Errorf("fields[%d].Name = %s, want %s", i, form.Fields[i].Name, want)
		}
	}
}

func TestFillItemsForm_SingleFailureFailsWhole(t *testing.T) {
	form := FillItemsForm(2)
	ok := form.Bind(values(map[string]string{
		"name_0": "Apple", "quantity_0": "5", "price_0": "100",
		"name_1": "Pear", "quantity_1": "0", "price_1": "80", // 数量非法
	}))
	if ok {
		t.Fatal("单行失败应导致整体失败")
	}

	// 其余已填值必须保留，供重渲染
	if got := form.String("name_0"); got != "Apple" {
		t.Errorf("name_0 = %s, want Apple", got)
	}
	if got := form.String("price_1"); got != "80" {
		t.Errorf("price_1 = %s, want 80", got)
	}

	// 错误只落在出错字段上
	for _, f := range form.Fields {
		if f.Name == "quantity_1" {
			if f.Error == "" {
				t.Error("quantity_1 缺少错误信息")
			}
		} else if f.Error != "" {
			t.Errorf("%s 不应有错误: %s", f.Name, f.Error)
		}
	}
}

func TestFillItemsForm_RequiredName(t *testing.T) {
	form := FillItemsForm(1)
	ok := form.Bind(values(map[string]string{
		"name_0": "   ", "quantity_0": "1", "price_0": "10",
	}))
	if ok {
		t.Fatal("空白名称应当被拒绝")
	}
}

func TestFillItemsForm_ItemRows(t *testing.T) {
	form := FillItemsForm(2)
	ok := form.Bind(values(map[string]string{
		"name_0": "Apple", "quantity_0": "5", "price_0": "100",
		"name_1": "Pear", "quantity_1": "2", "price_1": "80",
	}))
	if !ok {
		t.Fatalf("合法提交被拒绝: %+v", form.Fields)
	}

	rows := form.ItemRows(2)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Name != "Apple" || rows[0].Quantity != 5 || rows[0].Price != 100 {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[1].Name != "Pear" || rows[1].Quantity != 2 || rows[1].Price != 80 {
		t.Errorf("rows[1] = %+v", rows[1])
	}
}

// ==================== 批量更新表单 ====================

func TestUpdateItemsForm_DefaultsAndHidden(t *testing.T) {
	items := []model.Item{
		{Name: "Apple", Quantity: 5, Price: 100},
		{Name: "Pear", Quantity: 2, Price: 80},
	}
	form := UpdateItemsForm(items)

	// 每个商品 3 个可编辑字段 + 1 个隐藏回显
	if len(form.Fields) != 8 {
		t.Fatalf("字段数 = %d, want 8", len(form.Fields))
	}

	if got := form.String("name_0"); got != "Apple" {
		t.Errorf("name_0 默认值 = %s, want Apple", got)
	}
	if got := form.String("quantity_1"); got != "2" {
		t.Errorf("quantity_1 默认值 = %s, want 2", got)
	}

	var hidden *Field
	for i := range form.Fields {
		if form.Fields[i].Name == "original_price_1" {
			hidden = &form.Fields[i]
		}
	}
	if hidden == nil {
		t.Fatal("缺少 original_price_1")
	}
	if hidden.Kind != FieldHidden {
		t.Errorf("original_price_1 kind = %s, want hidden", hidden.Kind)
	}
	if hidden.Value != "80" {
		t.Errorf("original_price_1 = %s, want 80", hidden.Value)
	}
}

func TestUpdateItemsForm_HiddenSkipsValidation(t *testing.T) {
	items := []model.Item{{Name: "Apple", Quantity: 5, Price: 100}}
	form := UpdateItemsForm(items)

	// 隐藏字段被客户端篡改为任意文本也不影响整体校验
	ok := form.Bind(values(map[string]string{
		"name_0": "Apple", "quantity_0": "5", "price_0": "90",
		"original_price_0": "not-a-number",
	}))
	if !ok {
		t.Fatalf("隐藏字段不应参与校验: %+v", form.Fields)
	}
}
