package cart

// ProductInfo はカートが追加時点で控える表示用の商品情報。
// 以後に商品マスタが変わっても明細は追加時点の値のまま。
type ProductInfo struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"image_url"`
}

// Line はカートの1明細。(商品ID, サイズ)の組が明細の同一性。
type Line struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"image_url"`
	Size      string `json:"size"`
	Quantity  int64  `json:"quantity"`
}

// Cart は買い物セッション中の明細集合。
// 挿入順を保持し、(商品ID, サイズ)の重複明細は持たない。
// ロックは持たない。並行アクセスの直列化はStore側の責務。
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{lines: []Line{}}
}

// AddItem は同じ(商品ID, サイズ)の明細があれば数量+1、無ければ末尾に追加。
// サイズが商品の展開サイズかどうかの検証は呼び出し側の責務。
func (c *Cart) AddItem(p ProductInfo, size string) {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID && c.lines[i].Size == size {
			c.lines[i].Quantity++
			return
		}
	}

	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Size:      size,
		Quantity:  1,
	})
}

// RemoveItem は該当明細を削除。無ければ何もしない。
func (c *Cart) RemoveItem(productID int64, size string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID && c.lines[i].Size == size {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity は数量を指定値にする。0以下はRemoveItemと同じ扱い。
func (c *Cart) SetQuantity(productID int64, size string, quantity int64) {
	if quantity <= 0 {
		c.RemoveItem(productID, size)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID && c.lines[i].Size == size {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear は全明細を削除する。注文確定後に呼ぶ。
func (c *Cart) Clear() {
	c.lines = []Line{}
}

// Total は price×quantity の合計。キャッシュせず毎回計算する。
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Price * l.Quantity
	}
	return total
}

// ItemCount は数量の合計（明細数ではない。バッジ表示用）。
func (c *Cart) ItemCount() int64 {
	var count int64
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Lines は挿入順の明細コピーを返す。
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}
