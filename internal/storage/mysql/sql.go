package mysql

const upsertPropertySQL = `
INSERT INTO properties
  (id, title, location, price, currency, price_type, property_type, featured, doc)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  title         = VALUES(title),
  location      = VALUES(location),
  price         = VALUES(price),
  currency      = VALUES(currency),
  price_type    = VALUES(price_type),
  property_type = VALUES(property_type),
  featured      = VALUES(featured),
  doc           = VALUES(doc),
  updated_at    = CURRENT_TIMESTAMP
`

const upsertVendorSQL = `
INSERT INTO vendors
  (id, name, category, doc)
VALUES
  (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name       = VALUES(name),
  category   = VALUES(category),
  doc        = VALUES(doc),
  updated_at = CURRENT_TIMESTAMP
`

// Catalog order is id order.
const listPropertiesSQL = `SELECT doc FROM properties ORDER BY id`

const listVendorsSQL = `SELECT doc FROM vendors ORDER BY id`
