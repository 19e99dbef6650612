// seed mengisi database dengan data awal untuk development: satu user admin,
// satu user biasa, dan satu karyawan contoh milik user biasa tersebut.
//
// Pemakaian: go run ./cmd/seed
// Konfigurasi koneksi sama dengan cmd/api (env vars DB_* / DATABASE_URL).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jnasution/hris-api/internal/domain/entity"
	"github.com/jnasution/hris-api/internal/infrastructure/postgres"
	"github.com/jnasution/hris-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "muat konfigurasi: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "koneksi PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)

	now := time.Now()
	hash := func(pw string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
			os.Exit(1)
		}
		return string(h)
	}

	admin := &entity.User{
		ID:           uuid.NewString(),
		Name:         "Admin HRIS",
		Email:        "admin@hris.local",
		PasswordHash: hash("admin123"),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "seed admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("user admin dibuat: %s (%s)\n", admin.Email, admin.ID)

	budi := &entity.User{
		ID:           uuid.NewString(),
		Name:         "Budi Santoso",
		Email:        "budi@hris.local",
		PasswordHash: hash("budi123"),
		Role:         entity.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(budi); err != nil {
		fmt.Fprintf(os.Stderr, "seed user: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("user dibuat: %s (%s)\n", budi.Email, budi.ID)

	lahir, _ := time.Parse("2006-01-02", "1992-08-17")
	karyawan := &entity.Employee{
		ID:           uuid.NewString(),
		UserID:       &budi.ID,
		CreatedByID:  budi.ID,
		NIK:          "3175091708920001",
		NamaLengkap:  "Budi Santoso",
		TempatLahir:  "Jakarta",
		TanggalLahir: lahir,
		JenisKelamin: "L",
		Alamat:       "Jl. Merdeka No. 45, Jakarta Timur",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := employeeRepo.Create(karyawan); err != nil {
		fmt.Fprintf(os.Stderr, "seed karyawan: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("karyawan dibuat: %s (%s)\n", karyawan.NamaLengkap, karyawan.ID)
}
