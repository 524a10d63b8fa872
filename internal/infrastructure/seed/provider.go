// Package seed es el proveedor de datos estático: lee el catálogo (UPBJJ, kategori,
// stok, paket, tracking y usuarios) desde un YAML una sola vez al arrancar.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/sitta-api/internal/domain/entity"
	"github.com/jhoicas/sitta-api/internal/domain/tracking"
)

// Source origen del catálogo cargado.
type Source string

const (
	SourceFile     Source = "file"
	SourceFallback Source = "fallback"
)

type catalogFile struct {
	Regions    []string               `yaml:"regions"`
	Categories []string               `yaml:"categories"`
	Stock      []stockRow             `yaml:"stock"`
	Packages   []packageRow           `yaml:"packages"`
	Tracking   map[string]trackingRow `yaml:"tracking"`
	Users      []userRow              `yaml:"users"`
}

type stockRow struct {
	Code            string  `yaml:"code"`
	Title           string  `yaml:"title"`
	Category        string  `yaml:"category"`
	Region          string  `yaml:"region"`
	ShelfLocation   string  `yaml:"shelf_location"`
	Price           float64 `yaml:"price"`
	Quantity        int     `yaml:"quantity"`
	SafetyThreshold int     `yaml:"safety_threshold"`
	NoteHTML        string  `yaml:"note_html"`
}

type packageRow struct {
	Code     string   `yaml:"code"`
	Name     string   `yaml:"name"`
	Price    float64  `yaml:"price"`
	Contents []string `yaml:"contents"`
}

type trackingRow struct {
	StudentID     string       `yaml:"student_id"`
	RecipientName string       `yaml:"recipient_name"`
	Status        string       `yaml:"status"`
	Carrier       string       `yaml:"carrier"`
	ShipDate      string       `yaml:"ship_date"`
	Package       string       `yaml:"package"`
	Total         float64      `yaml:"total"`
	Journey       []journeyRow `yaml:"journey"`
}

type journeyRow struct {
	Timestamp string `yaml:"timestamp"`
	Note      string `yaml:"note"`
}

type userRow struct {
	Email    string `yaml:"email"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// Load lee el catálogo de path. Si path está vacío o el archivo no existe devuelve
// el catálogo incorporado (Fallback). Un archivo existente pero inválido es un error.
// Las contraseñas de los usuarios se hashean con bcrypt.
func Load(path string, loc *time.Location) (*entity.Catalog, Source, error) {
	if loc == nil {
		loc = time.Local
	}
	if path == "" {
		c, err := hashUsers(Fallback())
		return c, SourceFallback, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c, err := hashUsers(Fallback())
			return c, SourceFallback, err
		}
		return nil, "", fmt.Errorf("abrir catálogo: %w", err)
	}
	defer f.Close()

	c, err := Decode(f, loc)
	if err != nil {
		return nil, "", fmt.Errorf("catálogo %s: %w", path, err)
	}
	c, err = hashUsers(c)
	return c, SourceFile, err
}

// Decode convierte el YAML en catálogo sin hashear contraseñas.
func Decode(r io.Reader, loc *time.Location) (*entity.Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decodificar YAML: %w", err)
	}

	c := &entity.Catalog{
		Regions:    file.Regions,
		Categories: file.Categories,
		Tracking:   make(map[string]entity.TrackingRecord, len(file.Tracking)),
	}
	for _, s := range file.Stock {
		c.Stock = append(c.Stock, entity.StockItem{
			Code:            s.Code,
			Title:           s.Title,
			Category:        s.Category,
			Region:          s.Region,
			ShelfLocation:   s.ShelfLocation,
			Price:           decimal.NewFromFloat(s.Price),
			Quantity:        s.Quantity,
			SafetyThreshold: s.SafetyThreshold,
			NoteHTML:        s.NoteHTML,
		})
	}
	for _, p := range file.Packages {
		c.Packages = append(c.Packages, entity.PackageOffer{
			Code:     p.Code,
			Name:     p.Name,
			Price:    decimal.NewFromFloat(p.Price),
			Contents: p.Contents,
		})
	}
	for key, t := range file.Tracking {
		rec, err := toTrackingRecord(key, t, loc)
		if err != nil {
			return nil, err
		}
		c.Tracking[key] = rec
	}
	for _, u := range file.Users {
		role := u.Role
		if role == "" {
			role = entity.RoleOperator
		}
		name := u.Name
		if name == "" {
			name = u.Email
		}
		c.Users = append(c.Users, entity.User{Email: u.Email, DisplayName: name, PasswordHash: u.Password, Role: role})
	}
	return c, nil
}

func toTrackingRecord(key string, t trackingRow, loc *time.Location) (entity.TrackingRecord, error) {
	rec := entity.TrackingRecord{
		OrderNumber:   key,
		StudentID:     t.StudentID,
		RecipientName: t.RecipientName,
		Status:        entity.TrackingStatus(t.Status),
		Carrier:       t.Carrier,
		PackageLabel:  t.Package,
		Total:         decimal.NewFromFloat(t.Total),
	}
	if st, ok := entity.ParseTrackingStatus(t.Status); ok {
		rec.Status = st
	}
	if t.ShipDate != "" {
		d, err := time.ParseInLocation(tracking.DateLayout, t.ShipDate, loc)
		if err != nil {
			return rec, fmt.Errorf("DO %s: tanggal kirim %q: %w", key, t.ShipDate, err)
		}
		rec.ShipDate = d
	}
	for _, j := range t.Journey {
		ts, err := time.Parse(time.RFC3339, j.Timestamp)
		if err != nil {
			return rec, fmt.Errorf("DO %s: waktu %q: %w", key, j.Timestamp, err)
		}
		rec.Journey = append(rec.Journey, entity.JourneyEntry{Timestamp: ts.In(loc), Note: j.Note})
	}
	return rec, nil
}

func hashUsers(c *entity.Catalog) (*entity.Catalog, error) {
	for i, u := range c.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash de %s: %w", u.Email, err)
		}
		c.Users[i].PasswordHash = string(hash)
	}
	return c, nil
}
