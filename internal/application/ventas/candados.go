package ventas

import "sync"

// candadosPorUID reparte un mutex por vendedor. Los candados no se liberan
// nunca: el directorio de vendedores es pequeño y estable.
type candadosPorUID struct {
	mu     sync.Mutex
	porUID map[string]*sync.Mutex
}

// tomar devuelve el candado del UID, creándolo si es la primera vez.
func (c *candadosPorUID) tomar(uid string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.porUID == nil {
		c.porUID = make(map[string]*sync.Mutex)
	}
	m, ok := c.porUID[uid]
	if !ok {
		m = &sync.Mutex{}
		c.porUID[uid] = m
	}
	return m
}
