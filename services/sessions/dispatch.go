package sessions

import (
	"Playroom/services/games"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// roleAware is implemented by variant states that deal hidden roles at
// initialization (palermo). Roles are delivered per participant so that the
// session started event can carry each player's own role.
type roleAware interface {
	RoleOf(username string) string
}

// Start converts an accepted invitation into a live session: it initializes
// the variant state, registers the session, subscribes both participants to
// the session room, announces the start, broadcasts the initial snapshot and
// starts the tick loop for continuously-simulated variants.
func Start(st *Store, n Notifier, variant, inviter, opponent string) (string, error) {
	engine, ok := games.Lookup(variant)
	if !ok {
		return "", fmt.Errorf("unknown game variant %q", variant)
	}

	s := &Session{
		ID:      fmt.Sprintf("game-%s-%s", variant, uuid.NewString()),
		Variant: variant,
		Players: [2]string{inviter, opponent},
		State:   engine.Initialize(inviter, opponent),
		stop:    make(chan struct{}),
	}
	st.add(s)

	n.JoinRoom(inviter, s.Room())
	n.JoinRoom(opponent, s.Room())

	started := gin.H{
		"game":    variant,
		"game_id": s.ID,
		"players": []string{inviter, opponent},
	}
	if roles, ok := s.State.(roleAware); ok {
		for _, username := range s.Players {
			payload := gin.H{"role": roles.RoleOf(username)}
			for k, v := range started {
				payload[k] = v
			}
			n.ToUser(username, "game_started", payload)
		}
	} else {
		n.ToRoom(s.Room(), "game_started", started)
	}
	n.ToRoom(s.Room(), "game_state", gin.H{"game_id": s.ID, "state": s.State})

	if ticker, ok := engine.(games.TickEngine); ok {
		runLoop(st, n, s, ticker)
	}

	log.Printf("[SESSION] Started %s between %s and %s", s.ID, inviter, opponent)
	return s.ID, nil
}

// Dispatch applies a participant's move to its session. Missing sessions,
// foreign actors and rejected moves are silently dropped, apart from the
// optional advisory the engine attaches.
func Dispatch(st *Store, n Notifier, sessionID, actor string, mv games.Move) {
	ok := st.With(sessionID, func(s *Session) {
		if !s.HasPlayer(actor) {
			log.Printf("[MOVE-ERROR] %s is not a participant of %s", actor, sessionID)
			return
		}
		engine, ok := games.Lookup(s.Variant)
		if !ok {
			return
		}
		route(st, n, s, actor, engine.Apply(s.State, actor, mv))
	})
	if !ok {
		log.Printf("[MOVE] Dropped %q for missing session %s", mv.Action, sessionID)
	}
}

// route turns an engine result into broadcasts and, on terminal outcomes,
// tears the session down. Called with the session mutex held.
func route(st *Store, n Notifier, s *Session, actor string, res games.Result) {
	if res.Advisory != "" {
		n.ToUser(actor, "game_message", gin.H{"message": res.Advisory})
	}
	if res.Outcome == games.OutcomeReject {
		return
	}

	if res.Announce != "" {
		n.ToRoom(s.Room(), "game_message", gin.H{"message": res.Announce})
	}
	if res.Outcome == games.OutcomeTerminal {
		finishLocked(st, n, s, res.Message)
		return
	}
	if res.Round != nil {
		n.ToRoom(s.Room(), "round_result", gin.H{"result": res.Round.Result, "scores": res.Round.Scores})
	}
	if !res.Quiet {
		n.ToRoom(s.Room(), "game_state", gin.H{"game_id": s.ID, "state": s.State})
	}
	if res.Deferred != nil {
		schedule(st, n, s.ID, actor, res.Deferred)
	}
}

// schedule runs a deferred transition later, re-resolving the session so
// that a teardown in the meantime turns it into a no-op.
func schedule(st *Store, n Notifier, sessionID, actor string, d *games.Deferred) {
	time.AfterFunc(d.After, func() {
		st.With(sessionID, func(s *Session) {
			route(st, n, s, actor, d.Apply(s.State))
		})
	})
}

// finishLocked removes the session and broadcasts the termination message.
// Removal happens before the broadcast, so no participant can observe a
// mutation after the game over event. Called with the session mutex held.
func finishLocked(st *Store, n Notifier, s *Session, message string) {
	if _, ok := st.take(s.ID); !ok {
		return
	}
	s.stopLoop()
	n.ToRoom(s.Room(), "game_over", gin.H{"game_id": s.ID, "message": message})
	log.Printf("[SESSION] Finished %s: %s", s.ID, message)
}

// Terminate force-ends a session with the given message, used when a
// precondition outside the game itself breaks. Idempotent.
func Terminate(st *Store, n Notifier, sessionID, message string) {
	st.With(sessionID, func(s *Session) {
		finishLocked(st, n, s, message)
	})
}

// DropParticipant ends every session a departed participant was part of,
// regardless of game phase or turn ownership.
func DropParticipant(st *Store, n Notifier, username string) {
	for _, id := range st.SessionsWith(username) {
		Terminate(st, n, id, fmt.Sprintf("%s disconnected. Game over!", username))
	}
}

// runLoop drives fixed-interval simulation for a continuous variant. The
// loop exits when the session's stop channel closes or when a tick finds
// the session gone from the store.
func runLoop(st *Store, n Notifier, s *Session, engine games.TickEngine) {
	go func() {
		ticker := time.NewTicker(engine.TickInterval())
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				alive := st.With(s.ID, func(s *Session) {
					route(st, n, s, "", engine.Tick(s.State))
				})
				if !alive {
					return
				}
			}
		}
	}()
}
