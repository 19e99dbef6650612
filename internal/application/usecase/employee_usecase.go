package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jnasution/hris-api/internal/application/dto"
	"github.com/jnasution/hris-api/internal/domain"
	"github.com/jnasution/hris-api/internal/domain/access"
	"github.com/jnasution/hris-api/internal/domain/entity"
	"github.com/jnasution/hris-api/internal/domain/repository"
	"github.com/jnasution/hris-api/pkg/logger"
)

// EmployeeUseCase lapisan akses record karyawan. Setiap operasi adalah satu
// rangkaian check-then-act: resolve caller (di middleware), cek policy, lalu
// persist. Record yang ada tapi tidak lolos policy dilaporkan persis seperti
// record yang tidak ada (ErrNotFound) agar keberadaannya tidak bocor.
type EmployeeUseCase struct {
	repo     repository.EmployeeRepository
	pendRepo repository.PendidikanRepository
	pekRepo  repository.PekerjaanRepository
	kelRepo  repository.KeluargaRepository
	userRepo repository.UserRepository
	policy   access.Policy
	tx       TxRunner
	files    FileRemover
	log      *logger.Logger
}

// NewEmployeeUseCase membangun use case karyawan dengan seluruh dependensinya.
func NewEmployeeUseCase(
	repo repository.EmployeeRepository,
	pendRepo repository.PendidikanRepository,
	pekRepo repository.PekerjaanRepository,
	kelRepo repository.KeluargaRepository,
	userRepo repository.UserRepository,
	policy access.Policy,
	tx TxRunner,
	files FileRemover,
	log *logger.Logger,
) *EmployeeUseCase {
	return &EmployeeUseCase{
		repo:     repo,
		pendRepo: pendRepo,
		pekRepo:  pekRepo,
		kelRepo:  kelRepo,
		userRepo: userRepo,
		policy:   policy,
		tx:       tx,
		files:    files,
		log:      log,
	}
}

// List mengembalikan karyawan yang boleh dilihat pemanggil. Pada varian
// scoped filternya dikerjakan di query (user_id = caller OR created_by_id =
// caller), tidak pernah di sisi klien.
func (uc *EmployeeUseCase) List(callerID string, limit, offset int) (*dto.EmployeeListResponse, error) {
	var (
		list []*entity.Employee
		err  error
	)
	if uc.policy.Scoped() {
		list, err = uc.repo.ListByOwnerOrCreator(callerID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		resp, err := uc.withChildren(e)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetByID mengembalikan karyawan beserta anak-anaknya.
func (uc *EmployeeUseCase) GetByID(callerID, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.visible(callerID, id)
	if err != nil {
		return nil, err
	}
	return uc.withChildren(e)
}

// Create membuat karyawan baru. Creator selalu diisi dari identitas pemanggil,
// tidak pernah dari body. Pada varian scoped, userId yang dikirim dan berbeda
// dari pemanggil ditolak dengan ErrForbidden.
func (uc *EmployeeUseCase) Create(callerID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.NIK == "" || in.NamaLengkap == "" || in.TempatLahir == "" ||
		in.TanggalLahir == "" || in.JenisKelamin == "" || in.Alamat == "" {
		return nil, fmt.Errorf("%w: field wajib belum lengkap", domain.ErrInvalidInput)
	}
	tanggalLahir, err := parseTanggal("tanggalLahir", in.TanggalLahir)
	if err != nil {
		return nil, err
	}

	creator, err := uc.userRepo.GetByID(callerID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, fmt.Errorf("%w: createdById tidak valid", domain.ErrInvalidInput)
	}

	var ownerID *string
	if uc.policy.Scoped() {
		if in.UserID != nil && *in.UserID != "" && *in.UserID != callerID {
			return nil, fmt.Errorf("%w: tidak boleh membuat karyawan untuk user lain", domain.ErrForbidden)
		}
		// Default owner = pemanggil.
		owner := callerID
		ownerID = &owner
	} else if in.UserID != nil && *in.UserID != "" {
		linked, err := uc.userRepo.GetByID(*in.UserID)
		if err != nil {
			return nil, err
		}
		if linked == nil {
			return nil, fmt.Errorf("%w: userId tidak valid", domain.ErrInvalidInput)
		}
		ownerID = in.UserID
	}

	now := time.Now()
	e := &entity.Employee{
		ID:           uuid.New().String(),
		UserID:       ownerID,
		CreatedByID:  callerID,
		NIK:          in.NIK,
		NamaLengkap:  in.NamaLengkap,
		TempatLahir:  in.TempatLahir,
		TanggalLahir: tanggalLahir,
		JenisKelamin: in.JenisKelamin,
		Alamat:       in.Alamat,
		Foto:         in.Foto,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e, nil, nil, nil), nil
}

// Update partial update karyawan. Memindahkan userId atau createdById ke nilai
// selain id pemanggil ditolak dengan ErrForbidden (mencegah pembajakan
// kepemilikan lewat partial update); row yang keburu dihapus race lain muncul
// sebagai ErrNotFound dari repo.
func (uc *EmployeeUseCase) Update(callerID, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.visible(callerID, id)
	if err != nil {
		return nil, err
	}

	if uc.policy.Scoped() {
		if in.UserID != nil && *in.UserID != callerID {
			return nil, fmt.Errorf("%w: tidak boleh memindahkan kepemilikan karyawan", domain.ErrForbidden)
		}
		if in.CreatedByID != nil && *in.CreatedByID != callerID {
			return nil, fmt.Errorf("%w: tidak boleh mengubah pembuat karyawan", domain.ErrForbidden)
		}
	}
	if in.UserID != nil {
		if *in.UserID == "" {
			e.UserID = nil
		} else {
			linked, err := uc.userRepo.GetByID(*in.UserID)
			if err != nil {
				return nil, err
			}
			if linked == nil {
				return nil, fmt.Errorf("%w: userId tidak valid", domain.ErrInvalidInput)
			}
			e.UserID = in.UserID
		}
	}
	if in.CreatedByID != nil && *in.CreatedByID != "" {
		e.CreatedByID = *in.CreatedByID
	}
	if in.NIK != nil {
		if *in.NIK == "" {
			return nil, fmt.Errorf("%w: nik tidak boleh kosong", domain.ErrInvalidInput)
		}
		e.NIK = *in.NIK
	}
	if in.NamaLengkap != nil {
		if *in.NamaLengkap == "" {
			return nil, fmt.Errorf("%w: namaLengkap tidak boleh kosong", domain.ErrInvalidInput)
		}
		e.NamaLengkap = *in.NamaLengkap
	}
	if in.TempatLahir != nil {
		e.TempatLahir = *in.TempatLahir
	}
	if in.TanggalLahir != nil {
		t, err := parseTanggal("tanggalLahir", *in.TanggalLahir)
		if err != nil {
			return nil, err
		}
		e.TanggalLahir = t
	}
	if in.JenisKelamin != nil {
		e.JenisKelamin = *in.JenisKelamin
	}
	if in.Alamat != nil {
		e.Alamat = *in.Alamat
	}
	var oldFoto *string
	if in.Foto.Set {
		oldFoto = e.Foto
		if in.Foto.Valid {
			v := in.Foto.Value
			e.Foto = &v
		} else {
			e.Foto = nil
		}
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	uc.removeFoto(oldFoto, e.Foto)
	return uc.withChildren(e)
}

// Delete menghapus karyawan beserta seluruh anaknya dalam satu transaksi.
// Foto yang tersimpan dihapus best-effort setelah commit; gagal hapus file
// tidak pernah menggagalkan operasi.
func (uc *EmployeeUseCase) Delete(ctx context.Context, callerID, id string) error {
	e, err := uc.visible(callerID, id)
	if err != nil {
		return err
	}
	err = uc.tx.Run(ctx, func(
		empRepo repository.EmployeeRepository,
		pendRepo repository.PendidikanRepository,
		pekRepo repository.PekerjaanRepository,
		kelRepo repository.KeluargaRepository,
	) error {
		if err := pendRepo.DeleteByEmployee(id); err != nil {
			return err
		}
		if err := pekRepo.DeleteByEmployee(id); err != nil {
			return err
		}
		if err := kelRepo.DeleteByEmployee(id); err != nil {
			return err
		}
		return empRepo.Delete(id)
	})
	if err != nil {
		return err
	}
	uc.removeFoto(e.Foto, nil)
	return nil
}

// SetFoto mengganti foto karyawan dengan path hasil upload dan menghapus file
// lama best-effort.
func (uc *EmployeeUseCase) SetFoto(callerID, id, publicPath string) (*dto.EmployeeResponse, error) {
	e, err := uc.visible(callerID, id)
	if err != nil {
		return nil, err
	}
	old := e.Foto
	e.Foto = &publicPath
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	uc.removeFoto(old, e.Foto)
	return uc.withChildren(e)
}

// visible memuat karyawan dan menerapkan kebijakan not-found seragam:
// tidak ada dan tidak boleh dilihat menghasilkan error yang sama.
func (uc *EmployeeUseCase) visible(callerID, id string) (*entity.Employee, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil || !uc.policy.Allows(e, callerID) {
		return nil, fmt.Errorf("%w: Karyawan tidak ditemukan", domain.ErrNotFound)
	}
	return e, nil
}

func (uc *EmployeeUseCase) withChildren(e *entity.Employee) (*dto.EmployeeResponse, error) {
	pendidikan, err := uc.pendRepo.ListByEmployee(e.ID)
	if err != nil {
		return nil, err
	}
	pekerjaan, err := uc.pekRepo.ListByEmployee(e.ID)
	if err != nil {
		return nil, err
	}
	keluarga, err := uc.kelRepo.ListByEmployee(e.ID)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(e, pendidikan, pekerjaan, keluarga), nil
}

func (uc *EmployeeUseCase) removeFoto(old, current *string) {
	if old == nil {
		return
	}
	if current != nil && *current == *old {
		return
	}
	if err := uc.files.Remove(*old); err != nil {
		uc.log.Warn().Err(err).Str("path", *old).Msg("hapus foto karyawan gagal")
	}
}

func toEmployeeResponse(
	e *entity.Employee,
	pendidikan []*entity.Pendidikan,
	pekerjaan []*entity.Pekerjaan,
	keluarga []*entity.Keluarga,
) *dto.EmployeeResponse {
	resp := &dto.EmployeeResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		CreatedByID:  e.CreatedByID,
		NIK:          e.NIK,
		NamaLengkap:  e.NamaLengkap,
		TempatLahir:  e.TempatLahir,
		TanggalLahir: formatTanggal(e.TanggalLahir),
		JenisKelamin: e.JenisKelamin,
		Alamat:       e.Alamat,
		Foto:         e.Foto,
		Pendidikan:   make([]dto.PendidikanResponse, 0, len(pendidikan)),
		Pekerjaan:    make([]dto.PekerjaanResponse, 0, len(pekerjaan)),
		Keluarga:     make([]dto.KeluargaResponse, 0, len(keluarga)),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	for _, p := range pendidikan {
		resp.Pendidikan = append(resp.Pendidikan, *toPendidikanResponse(p))
	}
	for _, p := range pekerjaan {
		resp.Pekerjaan = append(resp.Pekerjaan, *toPekerjaanResponse(p))
	}
	for _, k := range keluarga {
		resp.Keluarga = append(resp.Keluarga, *toKeluargaResponse(k))
	}
	return resp
}
