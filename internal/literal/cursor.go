package literal

// cursor — позиция внутри текста литерала.
type cursor struct {
	text string
	off  int
}

func newCursor(text string, off int) cursor {
	return cursor{text: text, off: off}
}

// EOF проверяет, достигнут ли конец литерала
func (c *cursor) EOF() bool {
	return c.off >= len(c.text)
}

// Peek возвращает текущий байт или 0 в конце
func (c *cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.text[c.off]
}

// Bump продвигает курсор на один байт и возвращает прочитанный байт
func (c *cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.text[c.off]
	c.off++
	return b
}

// Rest returns the unparsed suffix starting at the cursor.
func (c *cursor) Rest() string {
	if c.EOF() {
		return ""
	}
	return c.text[c.off:]
}
