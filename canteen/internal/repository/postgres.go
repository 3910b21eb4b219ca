package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/akoskissak/student-canteen/canteen/internal/errs"
	"github.com/akoskissak/student-canteen/canteen/internal/model"
)

const (
	studentTableName     = `students`
	canteenTableName     = `canteens`
	reservationTableName = `reservations`
)

var (
	qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	studentColumns     = []string{"id", "name", "email", "is_admin"}
	canteenColumns     = []string{"id", "name", "location", "capacity", "working_hours"}
	reservationColumns = []string{"id", "student_id", "canteen_id", "date", "start_minute", "duration", "status"}
)

type postgres struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

var _ Repository = (*postgres)(nil)

func NewPostgresRepository(db *pgxpool.Pool, log *zap.Logger) *postgres {
	return &postgres{
		db:  db,
		log: log.Named("repo"),
	}
}

func (r *postgres) CreateStudent(ctx context.Context, s model.Student) (model.Student, error) {
	s.ID = uuid.NewString()
	q, args, err := qb.Insert(studentTableName).
		Columns(studentColumns...).
		Values(s.ID, s.Name, s.Email, s.IsAdmin).
		ToSql()
	if err != nil {
		return model.Student{}, err
	}
	if _, err := r.db.Exec(ctx, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Student{}, errs.ErrEmailTaken
		}
		r.log.Error("CreateStudent", zap.String("q", q), zap.Error(err))
		return model.Student{}, err
	}
	return s, nil
}

func (r *postgres) GetStudent(ctx context.Context, id string) (model.Student, error) {
	return r.getStudent(ctx, sq.Eq{"id": id})
}

func (r *postgres) GetStudentByEmail(ctx context.Context, email string) (model.Student, error) {
	return r.getStudent(ctx, sq.Eq{"email": email})
}

func (r *postgres) getStudent(ctx context.Context, where sq.Eq) (model.Student, error) {
	q, args, err := qb.Select(studentColumns...).
		From(studentTableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Student{}, err
	}
	var s model.Student
	if err := r.db.QueryRow(ctx, q, args...).Scan(&s.ID, &s.Name, &s.Email, &s.IsAdmin); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Student{}, errs.ErrStudentNotFound
		}
		return model.Student{}, err
	}
	return s, nil
}

func (r *postgres) CreateCanteen(ctx context.Context, c model.Canteen) (model.Canteen, error) {
	c.ID = uuid.NewString()
	hours, err := json.Marshal(c.WorkingHours)
	if err != nil {
		return model.Canteen{}, err
	}
	q, args, err := qb.Insert(canteenTableName).
		Columns(canteenColumns...).
		Values(c.ID, c.Name, c.Location, c.Capacity, hours).
		ToSql()
	if err != nil {
		return model.Canteen{}, err
	}
	if _, err := r.db.Exec(ctx, q, args...); err != nil {
		r.log.Error("CreateCanteen", zap.String("q", q), zap.Error(err))
		return model.Canteen{}, err
	}
	return c, nil
}

func (r *postgres) GetCanteen(ctx context.Context, id string) (model.Canteen, error) {
	q, args, err := qb.Select(canteenColumns...).
		From(canteenTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Canteen{}, err
	}
	c, err := scanCanteen(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Canteen{}, errs.ErrCanteenNotFound
		}
		return model.Canteen{}, err
	}
	return c, nil
}

func (r *postgres) ListCanteens(ctx context.Context) ([]model.Canteen, error) {
	q, args, err := qb.Select(canteenColumns...).
		From(canteenTableName).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Canteen, 0)
	for rows.Next() {
		c, err := scanCanteen(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *postgres) UpdateCanteen(ctx context.Context, c model.Canteen) (model.Canteen, error) {
	hours, err := json.Marshal(c.WorkingHours)
	if err != nil {
		return model.Canteen{}, err
	}
	q, args, err := qb.Update(canteenTableName).
		SetMap(map[string]interface{}{
			"name":          c.Name,
			"location":      c.Location,
			"capacity":      c.Capacity,
			"working_hours": hours,
		}).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return model.Canteen{}, err
	}
	tag, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return model.Canteen{}, err
	}
	if tag.RowsAffected() == 0 {
		return model.Canteen{}, errs.ErrCanteenNotFound
	}
	return c, nil
}

func (r *postgres) DeleteCanteenCascade(ctx context.Context, id string) (int, error) {
	var removed int
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		q, args, err := qb.Delete(reservationTableName).Where(sq.Eq{"canteen_id": id}).ToSql()
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, q, args...)
		if err != nil {
			return err
		}
		removed = int(tag.RowsAffected())

		q, args, err = qb.Delete(canteenTableName).Where(sq.Eq{"id": id}).ToSql()
		if err != nil {
			return err
		}
		tag, err = tx.Exec(ctx, q, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errs.ErrCanteenNotFound
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, errs.ErrCanteenNotFound) {
			r.log.Error("DeleteCanteenCascade", zap.String("id", id), zap.Error(err))
		}
		return 0, err
	}
	return removed, nil
}

func (r *postgres) CreateReservation(ctx context.Context, res model.Reservation) (model.Reservation, error) {
	res.ID = uuid.NewString()
	q, args, err := qb.Insert(reservationTableName).
		Columns(reservationColumns...).
		Values(res.ID, res.StudentID, res.CanteenID, res.Date.Time, int(res.Time), res.Duration, int(res.Status)).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	if _, err := r.db.Exec(ctx, q, args...); err != nil {
		r.log.Error("CreateReservation", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return model.Reservation{}, err
	}
	return res, nil
}

func (r *postgres) GetReservation(ctx context.Context, id string) (model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	res, err := scanReservation(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Reservation{}, errs.ErrReservationNotFound
		}
		return model.Reservation{}, err
	}
	return res, nil
}

func (r *postgres) UpdateReservationStatus(ctx context.Context, id string, status model.Status) (model.Reservation, error) {
	q, args, err := qb.Update(reservationTableName).
		Set("status", int(status)).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + strings.Join(reservationColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	res, err := scanReservation(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Reservation{}, errs.ErrReservationNotFound
		}
		return model.Reservation{}, err
	}
	return res, nil
}

func (r *postgres) ListStudentReservations(ctx context.Context, studentID string, status model.Status) ([]model.Reservation, error) {
	where := sq.Eq{"student_id": studentID}
	if status != 0 {
		where["status"] = int(status)
	}
	return r.listReservations(ctx, where)
}

func (r *postgres) ListCanteenReservations(ctx context.Context, canteenID string, date model.Date, status model.Status) ([]model.Reservation, error) {
	where := sq.Eq{"canteen_id": canteenID, "date": date.Time}
	if status != 0 {
		where["status"] = int(status)
	}
	return r.listReservations(ctx, where)
}

func (r *postgres) listReservations(ctx context.Context, where sq.Eq) ([]model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationTableName).
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, res)
	}
	return items, rows.Err()
}

func (r *postgres) Clear(ctx context.Context) error {
	q := fmt.Sprintf("truncate table %s, %s, %s", reservationTableName, canteenTableName, studentTableName)
	_, err := r.db.Exec(ctx, q)
	return err
}

func scanCanteen(row pgx.Row) (model.Canteen, error) {
	var (
		c     model.Canteen
		hours []byte
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Location, &c.Capacity, &hours); err != nil {
		return model.Canteen{}, err
	}
	if err := json.Unmarshal(hours, &c.WorkingHours); err != nil {
		return model.Canteen{}, errors.Wrap(err, "decode working hours")
	}
	return c, nil
}

func scanReservation(row pgx.Row) (model.Reservation, error) {
	var (
		res                     model.Reservation
		start, duration, status int
	)
	if err := row.Scan(&res.ID, &res.StudentID, &res.CanteenID, &res.Date.Time, &start, &duration, &status); err != nil {
		return model.Reservation{}, err
	}
	res.Time = model.Clock(start)
	res.Duration = duration
	res.Status = model.Status(status)
	return res, nil
}
