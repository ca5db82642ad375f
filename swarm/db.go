package swarm

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/yuulive/ew"
)

const (
	// TblParticles holds position and value of every particle at every
	// iteration.
	TblParticles = "swarmparticles"
	// TblParticlesBest holds each particle's personal best at every
	// iteration.
	TblParticlesBest = "swarmparticlesbest"
	// TblBest holds the swarm's global best at every iteration.
	TblBest = "swarmbest"
)

// recorder writes per-iteration swarm state to sqlite.  Rows are keyed by
// a run id so several runs can share one database file.
type recorder struct {
	db  *sql.DB
	run string
	dim int
}

func newRecorder(db *sql.DB, dim int) (*recorder, error) {
	r := &recorder{db: db, run: uuid.NewString(), dim: dim}

	s := "CREATE TABLE IF NOT EXISTS " + TblParticles + " (run TEXT, particle INTEGER, iter INTEGER, val REAL"
	s += r.xdbsql("define")
	s += ");"
	if _, err := db.Exec(s); err != nil {
		return nil, fmt.Errorf("swarm: creating %v: %w", TblParticles, err)
	}

	s = "CREATE TABLE IF NOT EXISTS " + TblParticlesBest + " (run TEXT, particle INTEGER, iter INTEGER, val REAL"
	s += r.xdbsql("define")
	s += ");"
	if _, err := db.Exec(s); err != nil {
		return nil, fmt.Errorf("swarm: creating %v: %w", TblParticlesBest, err)
	}

	s = "CREATE TABLE IF NOT EXISTS " + TblBest + " (run TEXT, iter INTEGER, val REAL"
	s += r.xdbsql("define")
	s += ");"
	if _, err := db.Exec(s); err != nil {
		return nil, fmt.Errorf("swarm: creating %v: %w", TblBest, err)
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

func pos2iface(pos []float64) []interface{} {
	iface := []interface{}{}
	for _, v := range pos {
		iface = append(iface, v)
	}
	return iface
}

// snapshot records current positions, personal bests, and the global
// best for one iteration.
func (r *recorder) snapshot(iter int, pop Swarm, gbest ew.Point) {
	tx, err := r.db.Begin()
	panicif(err)
	defer tx.Commit()

	s0 := "INSERT INTO " + TblParticles + " (run,particle,iter,val" + r.xdbsql("x") + ") VALUES (?,?,?,?" + r.xdbsql("?") + ");"
	s1 := "INSERT INTO " + TblParticlesBest + " (run,particle,iter,val" + r.xdbsql("x") + ") VALUES (?,?,?,?" + r.xdbsql("?") + ");"
	for _, p := range pop {
		args := []interface{}{r.run, p.Id, iter, p.Val}
		args = append(args, pos2iface(p.Pos())...)
		_, err := tx.Exec(s0, args...)
		panicif(err)

		args = []interface{}{r.run, p.Id, iter, p.Best.Val}
		args = append(args, pos2iface(p.Best.Pos())...)
		_, err = tx.Exec(s1, args...)
		panicif(err)
	}

	s2 := "INSERT INTO " + TblBest + " (run,iter,val" + r.xdbsql("x") + ") VALUES (?,?,?" + r.xdbsql("?") + ");"
	args := []interface{}{r.run, iter, gbest.Val}
	args = append(args, pos2iface(gbest.Pos())...)
	_, err = tx.Exec(s2, args...)
	panicif(err)
}

func panicif(err error) {
	if err != nil {
		panic(err.Error())
	}
}
