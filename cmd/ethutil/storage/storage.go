// Package storage keeps the operator's named private keys in a SQLite file.
package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/blockchainethdev/ethereum-util/pkg/hexstr"
	"github.com/blockchainethdev/ethereum-util/pkg/sign"
)

const defaultDBPath = "ethutil.db"

// ErrKeyNotFound is returned when no key is stored under a name.
var ErrKeyNotFound = errors.New("private key not found")

type Storage struct {
	db *gorm.DB
}

// NewStorage opens (and migrates) the keystore at path.
func NewStorage(path string) (*Storage, error) {
	if path == "" {
		path = defaultDBPath
	}

	dial := sqlite.Open(fmt.Sprintf("file:%s?cache=shared", path))
	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	if err := db.AutoMigrate(&PrivateKeyDTO{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type PrivateKeyDTO struct {
	Address    string    `gorm:"column:address;primaryKey"`
	Name       string    `gorm:"column:name;not null;unique"`
	PrivateKey string    `gorm:"column:private_key;not null;unique"`
	PublicKey  string    `gorm:"column:public_key;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

func (PrivateKeyDTO) TableName() string {
	return "private_keys"
}

// AddPrivateKey validates privateKeyHex and stores it under name together with
// its public key and address.
func (s *Storage) AddPrivateKey(name, privateKeyHex string) (*PrivateKeyDTO, error) {
	if name == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}

	privateKeyHex = hexstr.AddZero(strings.ToLower(strings.TrimSpace(privateKeyHex)))
	signer, err := sign.NewEthereumSigner(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}

	dto := PrivateKeyDTO{
		Address:    signer.Address(),
		Name:       name,
		PrivateKey: privateKeyHex,
		PublicKey:  signer.PublicKey(),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.db.Create(&dto).Error; err != nil {
		return nil, fmt.Errorf("failed to add private key: %w", err)
	}

	return &dto, nil
}

// GetPrivateKeys returns all stored keys ordered by name.
func (s *Storage) GetPrivateKeys() ([]PrivateKeyDTO, error) {
	var keys []PrivateKeyDTO
	if err := s.db.Order("name ASC").Find(&keys).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve private keys: %w", err)
	}
	return keys, nil
}

func (s *Storage) GetPrivateKeyByName(name string) (*PrivateKeyDTO, error) {
	var key PrivateKeyDTO
	if err := s.db.Where("name = ?", name).First(&key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, name)
		}
		return nil, fmt.Errorf("failed to retrieve private key: %w", err)
	}
	return &key, nil
}

func (s *Storage) DeletePrivateKey(name string) error {
	res := s.db.Where("name = ?", name).Delete(&PrivateKeyDTO{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete private key: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, name)
	}
	return nil
}
