package genetic

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/yuulive/ew"
)

const (
	// TblIndividuals holds chromosome and value of every individual at
	// every generation.
	TblIndividuals = "geneticindividuals"
	// TblBest holds the fittest individual of every generation.
	TblBest = "geneticbest"
)

// recorder writes per-generation population state to sqlite.  Rows are
// keyed by a run id so several runs can share one database file.
type recorder struct {
	db  *sql.DB
	run string
	dim int
}

func newRecorder(db *sql.DB, dim int) (*recorder, error) {
	r := &recorder{db: db, run: uuid.NewString(), dim: dim}

	s := "CREATE TABLE IF NOT EXISTS " + TblIndividuals + " (run TEXT, gen INTEGER, val REAL"
	s += r.xdbsql("define")
	s += ");"
	if _, err := db.Exec(s); err != nil {
		return nil, fmt.Errorf("genetic: creating %v: %w", TblIndividuals, err)
	}

	s = "CREATE TABLE IF NOT EXISTS " + TblBest + " (run TEXT, gen INTEGER, val REAL"
	s += r.xdbsql("define")
	s += ");"
	if _, err := db.Exec(s); err != nil {
		return nil, fmt.Errorf("genetic: creating %v: %w", TblBest, err)
	}
	return r, nil
}

func (r *recorder) xdbsql(op string) string {
	s := ""
	for i := 0; i < r.dim; i++ {
		switch op {
		case "?":
			s += ",?"
		case "define":
			s += fmt.Sprintf(",x%v REAL", i)
		case "x":
			s += fmt.Sprintf(",x%v", i)
		default:
			panic("invalid db op " + op)
		}
	}
	return s
}

func (r *recorder) snapshot(gen int, pop Population, best ew.Point, goal ew.Goal) {
	tx, err := r.db.Begin()
	panicif(err)
	defer tx.Commit()

	s0 := "INSERT INTO " + TblIndividuals + " (run,gen,val" + r.xdbsql("x") + ") VALUES (?,?,?" + r.xdbsql("?") + ");"
	for _, ind := range pop {
		args := []interface{}{r.run, gen, ind.Goal(goal)}
		for i := 0; i < ind.Len(); i++ {
			args = append(args, ind.Gene(i))
		}
		_, err := tx.Exec(s0, args...)
		panicif(err)
	}

	s1 := "INSERT INTO " + TblBest + " (run,gen,val" + r.xdbsql("x") + ") VALUES (?,?,?" + r.xdbsql("?") + ");"
	args := []interface{}{r.run, gen, best.Val}
	for i := 0; i < best.Len(); i++ {
		args = append(args, best.At(i))
	}
	_, err = tx.Exec(s1, args...)
	panicif(err)
}

func panicif(err error) {
	if err != nil {
		panic(err.Error())
	}
}
