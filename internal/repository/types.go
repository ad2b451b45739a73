package repository

// Page 偏移分页参数，结果按主键升序返回
type Page struct {
	Skip  int
	Limit int
}
