package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/recetario/internal/client"
	"github.com/dropDatabas3/recetario/internal/config"
	"github.com/dropDatabas3/recetario/internal/domain"
)

// printReply imprime el envelope tal cual lo devolvió el servicio,
// pretty-printed si es JSON válido.
func printReply(b json.RawMessage) {
	var v any
	if json.Unmarshal(b, &v) == nil {
		p, _ := json.MarshalIndent(v, "", "  ")
		fmt.Println(string(p))
		return
	}
	fmt.Println(string(b))
}

func main() {
	var cfgPath string

	var (
		authURL     string
		catalogURL  string
		readURL     string
		interactURL string
	)

	var d *client.Dispatcher

	root := &cobra.Command{
		Use:   "recetario",
		Short: "CLI del catálogo de recetas (auth, catálogo, interacción)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			// los flags pisan la config solo si se setearon
			if authURL == "" {
				authURL = cfg.Client.AuthURL
			}
			if catalogURL == "" {
				catalogURL = cfg.Client.CatalogURL
			}
			if readURL == "" {
				readURL = cfg.Client.CatalogReadURL
			}
			if interactURL == "" {
				interactURL = cfg.Client.InteractionURL
			}
			d = client.New(client.Config{
				AuthURL:        authURL,
				CatalogURL:     catalogURL,
				CatalogReadURL: readURL,
				InteractionURL: interactURL,
				Timeout:        cfg.ClientTimeout(),
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "path al config YAML")
	root.PersistentFlags().StringVar(&authURL, "auth-url", "", "URL del servicio de auth (default de config)")
	root.PersistentFlags().StringVar(&catalogURL, "catalog-url", "", "URL del endpoint mutante del catálogo")
	root.PersistentFlags().StringVar(&readURL, "read-url", "", "URL del endpoint read-only del catálogo")
	root.PersistentFlags().StringVar(&interactURL, "interaction-url", "", "URL del servicio de interacción")

	// ─── auth ───

	var regUser, regPass string
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Registrar un usuario nuevo",
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := d.Register(cmd.Context(), regUser, regPass)
			if err != nil {
				return err
			}
			printReply(reply)
			return nil
		},
	}
	registerCmd.Flags().StringVar(&regUser, "username", "", "nombre de usuario")
	registerCmd.Flags().StringVar(&regPass, "password", "", "contraseña")

	var logUser, logPass string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Verificar credenciales de un usuario",
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := d.Login(cmd.Context(), logUser, logPass)
			if err != nil {
				return err
			}
			printReply(reply)
			return nil
		},
	}
	loginCmd.Flags().StringVar(&logUser, "username", "", "nombre de usuario")
	loginCmd.Flags().StringVar(&logPass, "password", "", "contraseña")

	// ─── catálogo (mutante) ───

	recipeFromFlags := func(id, name, ingredients, instructions, cookingTime string) domain.Recipe {
		var ings []string
		for _, ing := range strings.Split(ingredients, ",") {
			if ing = strings.TrimSpace(ing); ing != "" {
				ings = append(ings, ing)
			}
		}
		return domain.Recipe{
			ID:           id,
			Name:         name,
			Ingredients:  ings,
			Instructions: instructions,
			CookingTime:  cookingTime,
		}
	}

	addRecipeFlags := func(cmd *cobra.Command, id, name, ings, instr, ct *string) {
		cmd.Flags().StringVar(id, "id", "", "ID de la receta")
		cmd.Flags().StringVar(name, "name", "", "nombre de la receta")
		cmd.Flags().StringVar(ings, "ingredients", "", "ingredientes separados por coma")
		cmd.Flags().StringVar(instr, "instructions", "", "instrucciones de preparación")
		cmd.Flags().StringVar(ct, "cooking-time", "", "tiempo de cocción (texto libre, ej. \"45 min\")")
	}

	var crID, crName, crIngs, crInstr, crTime string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Crear una receta nueva",
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := d.CreateRecipe(cmd.Context(), recipeFromFlags(crID, crName, crIngs, crInstr, crTime))
			if err != nil {
				return err
			}
			printReply(reply)
			return nil
		},
	}
	addRecipeFlags(createCmd, &crID, &crName, &crIngs, &crInstr, &crTime)

	var edID, edName, edIngs, edInstr, edTime string
	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Reemplazar una receta existente (el ID debe existir)",
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := d.EditRecipe(cmd.Context(), recipeFromFlags(edID, edName, edIngs, edInstr, edTime))
			if err != nil {
				return err
			}
			printReply(reply)
			return nil
		},
	}
	addRecipeFlags(editCmd, &edID, &edName, &edIngs, &edInstr, &edTime)

	// ─── catálogo (read-only) ───

	getCmd := &cobra.Command{
		Use:   "get <recipe-id>",
		Short: "Buscar una receta por ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := d.Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printReply(reply)
			return nil
		},
	}

	searchCmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Buscar recetas por nombre (substring, case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := d.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printReply(reply)
			return nil
		},
	}

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Listar el catálogo completo en orden de creación",
		RunE: func(cmd *cobra.Command, args []string) error {
			printReply(d.Browse(cmd.Context()))
			return nil
		},
	}

	detailsCmd := &cobra.Command{
		Use:   "details <recipe-id>",
		Short: "Ver el detalle (nombre, ingredientes, instrucciones) de una receta",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := d.Details(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printReply(reply)
			return nil
		},
	}

	// ─── interacción ───

	var rateID string
	var rateVal int
	rateCmd := &cobra.Command{
		Use:   "rate",
		Short: "Calificar una receta (1 a 5)",
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := d.Rate(cmd.Context(), rateID, rateVal)
			if err != nil {
				return err
			}
			printReply(reply)
			return nil
		},
	}
	rateCmd.Flags().StringVar(&rateID, "id", "", "ID de la receta")
	rateCmd.Flags().IntVar(&rateVal, "rating", 0, "calificación entera entre 1 y 5")

	var tagID, tagVal string
	tagCmd := &cobra.Command{
		Use:   "tag",
		Short: "Agregar un tag a una receta",
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := d.Tag(cmd.Context(), tagID, tagVal)
			if err != nil {
				return err
			}
			printReply(reply)
			return nil
		},
	}
	tagCmd.Flags().StringVar(&tagID, "id", "", "ID de la receta")
	tagCmd.Flags().StringVar(&tagVal, "tag", "", "tag a agregar (ej. vegan)")

	root.AddCommand(registerCmd, loginCmd, createCmd, editCmd, getCmd, searchCmd, browseCmd, detailsCmd, rateCmd, tagCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
