package forms

import (
	"fmt"
	"strconv"
	"strings"
)

// ==================== 字段描述符 ====================

// 字段类型常量
const (
	FieldText    = "text"    // 必填文本
	FieldInteger = "integer" // 整数
	FieldHidden  = "hidden"  // 隐藏回显字段，不参与校验
)

// Field 单个表单字段的描述符
// 动态表单不做运行时属性挂载，而是按序生成显式的描述符列表，
// 渲染和校验共用同一份结构
type Field struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Required bool   `json:"required"`
	Min      *int64 `json:"min,omitempty"` // 仅整数字段生效

	// 绑定后回填：提交值与字段级错误
	Value string `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// Form 一次请求的完整输入模式
type Form struct {
	Fields []Field `json:"fields"`

	index map[string]int
	bound bool
}

// New 按序组装表单
func New(fields ...Field) *Form {
	f := &Form{Fields: fields}
	f.reindex()
	return f
}

func (f *Form) reindex() {
	f.index = make(map[string]int, len(f.Fields))
	for i, fd := range f.Fields {
		f.index[fd.Name] = i
	}
}

// ==================== 绑定与校验 ====================

// Bind 用提交值填充并整体校验
// 任意一个字段失败即整体失败，但所有字段都会完成校验，
// 提交值全部保留，供调用方带错误重新渲染
func (f *Form) Bind(get func(name string) string) bool {
	f.bound = true
	ok := true

	for i := range f.Fields {
		fd := &f.Fields[i]
		fd.Value = strings.TrimSpace(get(fd.Name))
		fd.Error = ""

		// 隐藏字段只回显
		if fd.Kind == FieldHidden {
			continue
		}

		if fd.Value == "" {
			if fd.Required {
				fd.Error = "该字段必填"
				ok = false
			}
			continue
		}

		if fd.Kind == FieldInteger {
			n, err := strconv.ParseInt(fd.Value, 10, 64)
			if err != nil {
				fd.Error = "必须为整数"
				ok = false
				continue
			}
			if fd.Min != nil && n < *fd.Min {
				fd.Error = fmt.Sprintf("不能小于 %d", *fd.Min)
				ok = false
			}
		}
	}

	return ok
}

// Valid 绑定后是否全部通过
func (f *Form) Valid() bool {
	if !f.bound {
		return false
	}
	for i := range f.Fields {
		if f.Fields[i].Error != "" {
			return false
		}
	}
	return true
}

// ==================== 取值辅助 ====================

// String 取文本字段值
func (f *Form) String(name string) string {
	if i, ok := f.index[name]; ok {
		return f.Fields[i].Value
	}
	return ""
}

// Int 取整数字段值
// 只应在 Bind 通过后调用，此时解析必然成功
func (f *Form) Int(name string) int64 {
	if i, ok := f.index[name]; ok {
		n, _ := strconv.ParseInt(f.Fields[i].Value, 10, 64)
		return n
	}
	return 0
}

// intPtr 便捷构造 Min 约束
func intPtr(n int64) *int64 {
	return &n
}
